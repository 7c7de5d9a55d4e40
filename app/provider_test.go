package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendanbates89/dot/app"
	frameworkapp "github.com/brendanbates89/dot/framework/app"
	"github.com/brendanbates89/dot/framework/container"
)

func newBooted(t *testing.T) *frameworkapp.Application {
	t.Helper()
	a, err := frameworkapp.New("testdata/absent.env")
	require.NoError(t, err)
	require.NoError(t, a.Register(&app.AppServiceProvider{}))
	require.NoError(t, a.Boot())
	return a
}

func TestProvider_UserStoreRegistered(t *testing.T) {
	a := newBooted(t)

	store, err := container.Get[app.UserStore](a.Container)
	require.NoError(t, err)
	require.Len(t, store.All(), 2, "store should be seeded")

	added := store.Add("Carol")
	found, ok := store.Find(added.ID)
	require.True(t, ok)
	require.Equal(t, "Carol", found.Name)
}

func TestProvider_MailerBuiltFromMailConfig(t *testing.T) {
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_FROM_ADDRESS", "team@example.com")

	a := newBooted(t)

	m, err := container.Get[app.Mailer](a.Container)
	require.NoError(t, err)
	require.Equal(t, "smtp.example.com", m.Host)
	require.Contains(t, m.Compose("dev@example.com", "hello"), "From: team@example.com")
}

func TestProvider_MailerFactoryServesOneOffs(t *testing.T) {
	a := newBooted(t)

	m, err := container.Generate[app.Mailer](a.Container, app.MailerConfig{
		Host: "smtp.staging",
		Port: "2525",
		From: "staging@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "smtp.staging", m.Host)

	// The registered mailer is untouched.
	shared, err := container.Get[app.Mailer](a.Container)
	require.NoError(t, err)
	require.NotSame(t, m, shared)
}

func TestProvider_MailerFactoryValidates(t *testing.T) {
	a := newBooted(t)

	_, err := container.Generate[app.Mailer](a.Container, app.MailerConfig{})
	require.ErrorContains(t, err, "host required")
}
