package memstore

import (
	"github.com/campaignforge/campaignforge-go/internal/fixtures"
)

// Demo login for the self-seeded backend.
const (
	FixtureUsername = fixtures.Username
	FixturePassword = fixtures.Password
)

// seedFixtures populates the store with the demo workspace so the
// dashboard renders something out of the box.
func (s *Store) seedFixtures() {
	demo := fixtures.NewDemo()

	s.users[demo.User.ID] = demo.User
	for _, c := range demo.Campaigns {
		s.campaigns[c.ID] = c
	}
	for _, c := range demo.Contacts {
		s.contacts[c.ID] = c
	}
	for _, t := range demo.Tasks {
		s.tasks[t.ID] = t
	}
	for _, a := range demo.Activities {
		s.activities[a.ID] = a
	}
}
