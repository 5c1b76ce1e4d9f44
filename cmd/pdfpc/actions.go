package main

import (
	"github.com/davvil/pdfpc/internal/session"
)

func renderActionTable(actions []session.Action) string {
	rows := make([][]string, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, []string{action.Name, action.Description})
	}
	return renderTable([]string{"Action", "Description"}, rows)
}
