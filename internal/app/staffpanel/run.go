package staffpanel

import (
	"context"
	"time"

	"restaurant-deluxe/internal/client"
	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/staff"
)

// Run polls the action API and logs each snapshot. The terminal panel UI
// renders on top of these log lines; rendering itself lives elsewhere.
func Run(ctx context.Context, apiURL string, interval time.Duration) error {
	lg := logger.New("staff-panel")
	api := client.New(apiURL)

	p := staff.NewPoller(api, interval, func(s staff.Snapshot) {
		occupied := 0
		for _, t := range s.Tables {
			if t.CurrentOrderID != "" {
				occupied++
			}
		}
		lg.Info("panel_refreshed", map[string]any{
			"active_orders": len(s.Orders),
			"tables":        len(s.Tables),
			"occupied":      occupied,
			"taken_at":      s.Taken.Format(time.RFC3339),
		})
	})
	return p.Run(ctx)
}
