package contract

import "github.com/alexanderramin/skillpath/internal/app"

type CatalogListResult = app.CatalogListResult

type ValidationReport = app.ValidationReport

type CatalogStats = app.CatalogStats

type SeedResult = app.SeedResult

type ImportResult = app.ImportResult
