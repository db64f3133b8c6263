package main

//go:generate echo "Generating SQLC files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && sqlc generate -f ../storage/sqlc.yaml"
//go:generate echo "SQLC files generated"

// This file holds the go:generate directives for the typed queries in
// storage/db. Run
//
// go generate ./...
//
// from the project root after changing storage/queries.
