package contract

import "github.com/alexanderramin/skillpath/internal/app"

type StatusReport = app.StatusReport
