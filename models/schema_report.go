package models

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

/*
Column Mismatch Report Usage:

This file contains functionality to generate a report of database columns that aren't
accounted for as fields in the corresponding Go row structs.

To generate the report:

1. Set the environment variable: GENERATE_COLUMN_REPORT=true
2. Run the application: go run .

The report will show:
- Each table name
- List of columns that exist in the database but not in the Go row struct
- Summary of total mismatched columns across all tables

Example output:
	table=projects unmapped=[created_at updated_at] msg="columns not accounted for in model"
	table=skills msg="all columns are accounted for in the model"
	total=2 msg="column mismatch report complete"
*/

// Rows lists every persisted row type, in migration order.
func Rows() []interface{} {
	return []interface{}{
		&ProjectRow{},
		&SkillRow{},
		&ExperienceRow{},
		&MessageRow{},
	}
}

// AutoMigrate creates the portfolio tables, adding any missing columns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Rows()...); err != nil {
		return fmt.Errorf("migrate portfolio tables: %w", err)
	}
	return nil
}

// TableReport is the column mismatch result for one table.
type TableReport struct {
	Table    string
	Exists   bool
	Unmapped []string
}

// GenerateColumnMismatchReport compares each table's live columns with the
// columns its row struct maps.
func GenerateColumnMismatchReport(db *gorm.DB) ([]TableReport, error) {
	reports := make([]TableReport, 0, len(Rows()))

	for _, row := range Rows() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(row); err != nil {
			return nil, fmt.Errorf("parse row schema: %w", err)
		}
		tableName := stmt.Schema.Table

		report := TableReport{Table: tableName}
		if !db.Migrator().HasTable(row) {
			reports = append(reports, report)
			continue
		}
		report.Exists = true

		dbColumns, err := getTableColumns(db, row)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
		}

		report.Unmapped = findColumnMismatches(dbColumns, stmt.Schema.DBNames)
		reports = append(reports, report)
	}

	return reports, nil
}

// LogColumnMismatchReport writes the report through the global logger and
// returns the total number of unmapped columns.
func LogColumnMismatchReport(reports []TableReport) int {
	totalMismatches := 0
	for _, report := range reports {
		switch {
		case !report.Exists:
			log.Warn().Str("table", report.Table).Msg("table does not exist yet (will be created during migration)")
		case len(report.Unmapped) > 0:
			log.Warn().Str("table", report.Table).Strs("unmapped", report.Unmapped).Msg("columns not accounted for in model")
			totalMismatches += len(report.Unmapped)
		default:
			log.Info().Str("table", report.Table).Msg("all columns are accounted for in the model")
		}
	}
	log.Info().Int("total", totalMismatches).Msg("column mismatch report complete")
	return totalMismatches
}

// getTableColumns retrieves column names for the row's table using the
// driver-neutral migrator.
func getTableColumns(db *gorm.DB, row interface{}) ([]string, error) {
	columnTypes, err := db.Migrator().ColumnTypes(row)
	if err != nil {
		return nil, err
	}
	columns := make([]string, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	sort.Strings(mismatches)

	return mismatches
}
