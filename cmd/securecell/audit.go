package main

import (
	"fmt"
	"os"

	"github.com/backkem/securecell/pkg/audit"
)

var auditLog *audit.Log

// recordAudit opens the audit database on first use, per
// --audit-db, and appends one entry for operation. With no --audit-db
// given this is a no-op.
func recordAudit(operation string, opErr error) {
	if auditDBPath == "" {
		return
	}
	if auditLog == nil {
		log, err := audit.Open(auditDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "securecell: warning: %v\n", err)
			return
		}
		auditLog = log
	}
	auditLog.Record(operation, opErr)
}
