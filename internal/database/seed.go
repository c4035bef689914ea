package database

import (
	"context"
	"log"

	"seatplan/internal/layout"
	"seatplan/internal/repository"
)

// defaultUsers is the roster inserted on first run so the booking form
// has people to choose from. The first entry is the office admin.
var defaultUsers = []struct {
	Name    string
	Email   string
	IsAdmin bool
}{
	{"John Doe", "john.doe@company.com", true},
	{"Jane Smith", "jane.smith@company.com", false},
	{"Bob Johnson", "bob.johnson@company.com", false},
	{"Alice Williams", "alice.williams@company.com", false},
	{"Charlie Brown", "charlie.brown@company.com", false},
	{"Diana Prince", "diana.prince@company.com", false},
	{"Edward Norton", "edward.norton@company.com", false},
	{"Fiona Green", "fiona.green@company.com", false},
	{"George Harris", "george.harris@company.com", false},
	{"Helen Clark", "helen.clark@company.com", false},
}

// Seed populates empty tables on first initialization: the default
// user roster and the canonical 7x6 desk grid with two meeting rooms.
// Tables that already hold data are left alone.
func Seed(ctx context.Context, seats *repository.SeatRepo, users *repository.UserRepo) error {
	n, err := seats.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		if err := seats.ReplaceLayout(ctx, layout.Default()); err != nil {
			return err
		}
		log.Printf("seeded default floor plan (%d items)", layout.DefaultDesks+2)
	}

	n, err = users.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, u := range defaultUsers {
			email := u.Email
			if _, err := users.Create(ctx, u.Name, &email, u.IsAdmin); err != nil {
				return err
			}
		}
		log.Printf("seeded %d default users", len(defaultUsers))
	}
	return nil
}
