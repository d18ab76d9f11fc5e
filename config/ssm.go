package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newSSMClient = func(cfg aws.Config) ssm.GetParametersByPathAPIClient {
		return ssm.NewFromConfig(cfg)
	}
)

// LoadSSM merges the parameters stored under AWS_SSM_PARAMETER_PATH into
// config. Each parameter is keyed by the last segment of its name, so
// /portfolio/prod/RESEND_API_KEY becomes RESEND_API_KEY. Values already set
// in the environment win. It is a no-op when the path is unset.
func LoadSSM(ctx context.Context, config map[string]string) error {
	path := GetString(config, "AWS_SSM_PARAMETER_PATH", "")
	if path == "" {
		return nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region := GetString(config, "AWS_REGION", ""); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	n, err := mergeParameters(ctx, newSSMClient(awsCfg), path, config)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("loaded", n).Msg("Loaded configuration from SSM")
	return nil
}

func mergeParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, path string, config map[string]string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(path),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return loaded, fmt.Errorf("read ssm parameters under %s: %w", path, err)
		}
		for _, p := range page.Parameters {
			name := aws.ToString(p.Name)
			key := name[strings.LastIndex(name, "/")+1:]
			if key == "" {
				continue
			}
			if _, ok := lookup(config, key); ok {
				continue
			}
			config[key] = aws.ToString(p.Value)
			loaded++
		}
	}
	return loaded, nil
}
