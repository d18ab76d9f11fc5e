package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abdhesh369/my-portfolio/models"
	"github.com/rs/zerolog/log"
)

const DefaultResendBaseURL = "https://api.resend.com"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// EmailNotifier forwards contact messages to the site owner's inbox through
// Resend.
type EmailNotifier struct {
	APIKey     string
	From       string
	Recipients []string
	BaseURL    string
	Client     *http.Client
}

func (n *EmailNotifier) Channel() string {
	return "email"
}

func (n *EmailNotifier) NotifyContactMessage(ctx context.Context, message models.Message) error {
	subject := "New portfolio message from " + message.Name
	if message.Subject != "" {
		subject = fmt.Sprintf("%s (%s)", message.Subject, message.Name)
	}

	payload := ResendEmailRequest{
		From:    n.From,
		To:      n.Recipients,
		Subject: subject,
		Html:    contactEmailHTML(message),
		Text:    contactEmailText(message),
		ReplyTo: message.Email,
	}
	return n.SendEmail(ctx, payload)
}

// SendEmail sends an email using the Resend API
func (n *EmailNotifier) SendEmail(ctx context.Context, payload ResendEmailRequest) error {
	if n.APIKey == "" {
		return fmt.Errorf("resend API key is required")
	}
	if payload.From == "" {
		return fmt.Errorf("sender address is required")
	}
	if len(payload.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	baseURL := strings.TrimRight(n.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultResendBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := n.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}

func contactEmailHTML(message models.Message) string {
	var b strings.Builder
	b.WriteString("<h2>New contact message</h2>")
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(message.Name), html.EscapeString(message.Email))
	if message.Subject != "" {
		fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(message.Subject))
	}
	body := html.EscapeString(message.Message)
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(body, "\n", "<br>"))
	return b.String()
}

func contactEmailText(message models.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", message.Name, message.Email)
	if message.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", message.Subject)
	}
	b.WriteString("\n")
	b.WriteString(message.Message)
	return b.String()
}
