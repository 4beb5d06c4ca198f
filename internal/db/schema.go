package db

import "log"

// RequiredTables lists every table the registry reads or writes.
var RequiredTables = []string{
	"users",
	"cities",
	"vehicle_types",
	"vehicles",
	"time_slots",
	"trip_schedules",
}

// CheckSchema logs a warning for each required table missing from the
// connected database. Missing tables are reported, not fatal, so a fresh
// environment can still boot and run migrations.
func CheckSchema(q QueryRower) []string {
	missing := []string{}
	for _, table := range RequiredTables {
		if !HasTable(q, table) {
			missing = append(missing, table)
			log.Printf("[SCHEMA] warning: table %s not found, run migrations", table)
		}
	}
	return missing
}
