package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarewebs/flarewebs-server/internal/mailer"
	"github.com/flarewebs/flarewebs-server/internal/mocks"
	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/testutil"
)

const testSecret = "secret"

// recordingScheduler keeps deferred tasks until the test runs them.
type recordingScheduler struct {
	mu    sync.Mutex
	names []string
	tasks []model.Task
}

func (r *recordingScheduler) Defer(_ context.Context, name string, task model.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	r.tasks = append(r.tasks, task)
}

func (r *recordingScheduler) run(t *testing.T) []error {
	t.Helper()
	r.mu.Lock()
	tasks := r.tasks
	r.mu.Unlock()

	var errs []error
	for _, task := range tasks {
		errs = append(errs, task(context.Background()))
	}
	return errs
}

func newNotifier(t *testing.T, scheduler model.Scheduler, m model.Mailer) *Notifier {
	t.Helper()
	composer, err := mailer.NewComposer("flarewebs", "http://localhost")
	require.NoError(t, err)
	return NewNotifier(scheduler, m, composer, testutil.MakeNoopLogger())
}

func newTokens(tm model.TokenManager) *TokenService {
	return NewTokenService(tm, TokenConfig{Secret: testSecret, AccessTTL: time.Hour, UserTokenHours: 48})
}

func assertAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var apiErr *model.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.Status)
	if msg != "" {
		assert.Equal(t, msg, apiErr.Message)
	}
}

type authDeps struct {
	users     *mocks.UserStore
	cache     *mocks.UserCache
	hasher    *mocks.PasswordHasher
	tokens    *mocks.TokenManager
	mailer    *mocks.Mailer
	scheduler *recordingScheduler
}

func newAuthDeps(t *testing.T) authDeps {
	return authDeps{
		users:     mocks.NewUserStore(t),
		cache:     mocks.NewUserCache(t),
		hasher:    mocks.NewPasswordHasher(t),
		tokens:    mocks.NewTokenManager(t),
		mailer:    mocks.NewMailer(t),
		scheduler: &recordingScheduler{},
	}
}
