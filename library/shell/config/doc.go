// Package config provides the librarian's settings and the PostgreSQL connection builders.
//
// Settings come from .env / .env.local files, LIBRARY_-prefixed environment variables and bound CLI flags,
// in increasing order of precedence. The connection builders create a pgx pool, a database/sql handle or
// a sqlx handle with the pool sizing used throughout the project.
package config
