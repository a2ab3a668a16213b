package repository

import (
	"os"
	"strings"
)

func salesTableName() string {
	if v := strings.TrimSpace(os.Getenv("SALES_TABLE")); v != "" {
		return v
	}
	return defaultSalesTableName
}
