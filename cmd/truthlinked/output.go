package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// statusColor maps a service status string to a terminal color.
func statusColor(status string) *color.Color {
	switch status {
	case "healthy", "ok", "pass", "compliant":
		return okColor
	case "degraded", "warn":
		return warnColor
	default:
		return failColor
	}
}

func printField(name string, value any) {
	dimColor.Printf("%-16s", name)
	fmt.Println(value)
}
