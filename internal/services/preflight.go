package services

import (
	"fmt"
	"strings"

	"github.com/skyharboraero/flightline-backend/internal/dto"
)

// ComposePreflightDescription builds the human-readable description of a
// preflight request. Present optional fields become labeled lines under the
// preflight header, and free-text notes follow under an "Additional Notes"
// heading. The header always wraps the result, even when every optional
// field is absent.
func ComposePreflightDescription(req *dto.CreateServiceRequestRequest) string {
	var b strings.Builder
	b.WriteString("PREFLIGHT SERVICE REQUEST")

	if req.RequestedDeparture != nil {
		b.WriteString("\nFlight Time: ")
		b.WriteString(req.RequestedDeparture.Format("Jan 2, 2006 15:04 MST"))
		if req.Airport != "" {
			b.WriteString(" from ")
			b.WriteString(req.Airport)
		}
	}

	if fuel := fuelLine(req); fuel != "" {
		b.WriteString("\nFuel: ")
		b.WriteString(fuel)
	}

	if fluids := fluidLine(req); fluids != "" {
		b.WriteString("\nFluids/Ground: ")
		b.WriteString(fluids)
	}

	if notes := strings.TrimSpace(req.Notes); notes != "" {
		b.WriteString("\nAdditional Notes:\n")
		b.WriteString(notes)
	}

	return b.String()
}

func fuelLine(req *dto.CreateServiceRequestRequest) string {
	if req.FuelGrade == "" && req.FuelQuantity <= 0 {
		return ""
	}
	switch {
	case req.FuelGrade != "" && req.FuelQuantity > 0:
		return fmt.Sprintf("%s, %.1f gal", req.FuelGrade, req.FuelQuantity)
	case req.FuelGrade != "":
		return req.FuelGrade
	default:
		return fmt.Sprintf("%.1f gal", req.FuelQuantity)
	}
}

func fluidLine(req *dto.CreateServiceRequestRequest) string {
	var parts []string
	if req.NeedsO2 {
		parts = append(parts, "O2 top-off")
	}
	if req.NeedsTKS {
		parts = append(parts, "TKS fill")
	}
	if req.NeedsGPU {
		parts = append(parts, "GPU on arrival")
	}
	if req.NeedsHangar {
		parts = append(parts, "hangar pull-out")
	}
	return strings.Join(parts, ", ")
}
