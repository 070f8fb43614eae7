package repository

import (
	"fmt"
	"strings"

	"gestao_compras/internal/usecase/interfaces"
)

// Store drivers.
const (
	DriverDynamo   = "dynamodb"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type column struct {
	name, sqlType string
}

var tableColumns = map[string][]column{
	interfaces.TableRequests: {
		{"id", "bigint PRIMARY KEY"},
		{"orderNumber", "text"},
		{"requestDate", "text NOT NULL"},
		{"requester", "text"},
		{"sector", "text"},
		{"supplier", "text"},
		{"description", "text"},
		{"urgency", "text"},
		{"purchaseOrderDate", "text"},
		{"forecastDate", "text"},
		{"deliveryDate", "text"},
		{"status", "text"},
		{"responsible", "text"},
		{"items", "jsonb DEFAULT '[]'"},
		{"customFields", "jsonb DEFAULT '{}'"},
		{"history", "jsonb DEFAULT '[]'"},
	},
	interfaces.TableStatuses: {
		{"id", "bigint PRIMARY KEY"},
		{"name", "text NOT NULL"},
		{"color", "text NOT NULL"},
	},
	interfaces.TableSectors: {
		{"id", "bigint PRIMARY KEY"},
		{"name", "text NOT NULL"},
		{"description", "text"},
	},
	interfaces.TableFormFields: {
		{"id", "text PRIMARY KEY"},
		{"label", "text NOT NULL"},
		{"type", "text NOT NULL"},
		{"options", "jsonb DEFAULT '[]'"},
		{"active", "boolean DEFAULT true"},
		{"required", "boolean DEFAULT false"},
		{"standard", "boolean DEFAULT false"},
		{"showInList", "boolean DEFAULT true"},
		{"order", "integer DEFAULT 0"},
	},
	interfaces.TableUsers: {
		{"id", "bigint PRIMARY KEY"},
		{"name", "text NOT NULL"},
		{"email", "text NOT NULL UNIQUE"},
		{"password", "text NOT NULL"},
		{"role", "text NOT NULL"},
		{"sector", "text"},
	},
	interfaces.TableSuppliers: {
		{"id", "bigint PRIMARY KEY"},
		{"name", "text NOT NULL"},
		{"contact", "text"},
		{"email", "text"},
		{"phone", "text"},
		{"category", "text"},
		{"rating", "integer DEFAULT 0"},
		{"notes", "text"},
	},
	interfaces.TablePriceMaps: {
		{"id", "bigint PRIMARY KEY"},
		{"title", "text NOT NULL"},
		{"date", "text"},
		{"notes", "text"},
		{"items", "jsonb DEFAULT '[]'"},
		{"offers", "jsonb DEFAULT '[]'"},
	},
	interfaces.TableThermal: {
		{"id", "bigint PRIMARY KEY"},
		{"equipment", "text NOT NULL"},
		{"location", "text"},
		{"targetTemperature", "double precision"},
		{"tolerance", "double precision"},
		{"status", "text"},
		{"measurements", "jsonb DEFAULT '[]'"},
	},
}

// SetupScript returns the statements that create every required table for
// the given driver. The memory driver needs none.
func SetupScript(driver, tablePrefix string) string {
	switch driver {
	case DriverPostgres:
		return postgresScript(tablePrefix)
	case DriverDynamo:
		return dynamoScript(tablePrefix)
	default:
		return ""
	}
}

func postgresScript(prefix string) string {
	var b strings.Builder
	for _, t := range interfaces.RequiredTables {
		cols := tableColumns[t]
		fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quoteIdent(physicalName(prefix, t)))
		for i, c := range cols {
			sep := ","
			if i == len(cols)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  %s %s%s\n", quoteIdent(c.name), c.sqlType, sep)
		}
		b.WriteString(");\n")
		// Schema repair for tables created by an older release.
		for _, c := range cols[1:] {
			fmt.Fprintf(&b, "ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s;\n",
				quoteIdent(physicalName(prefix, t)), quoteIdent(c.name), strings.TrimSuffix(strings.Split(c.sqlType, " NOT NULL")[0], " UNIQUE"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func dynamoScript(prefix string) string {
	var b strings.Builder
	for _, t := range interfaces.RequiredTables {
		keyType := "N"
		if t == interfaces.TableFormFields {
			keyType = "S"
		}
		fmt.Fprintf(&b, "aws dynamodb create-table --table-name %s "+
			"--attribute-definitions AttributeName=id,AttributeType=%s "+
			"--key-schema AttributeName=id,KeyType=HASH "+
			"--billing-mode PAY_PER_REQUEST\n", physicalName(prefix, t), keyType)
	}
	return b.String()
}
