package ch

import (
	"os"
	"runtime"
	"strings"

	"leadlens/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo names this process in system.query_log
// products are tag@commit, role, go version and host, in that order
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = "leadlens"
	}
	host, _ := os.Hostname()

	products := [][2]string{
		{tag, version.Commit()},
		{"role", strings.TrimSpace(role)},
		{"go", runtime.Version()},
		{"host", host},
	}
	var ci clickhouse.ClientInfo
	for _, p := range products {
		ci.Products = append(ci.Products, struct{ Name, Version string }{p[0], p[1]})
	}
	return ci
}
