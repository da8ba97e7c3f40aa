package session

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type okSender struct{}

func (okSender) Send(context.Context, models.ContactInput) error { return nil }

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store := NewStore(ttl, func(n contact.Notifier) *contact.Flow {
		return contact.NewFlow(okSender{}, contact.WithResetDelay(time.Hour), contact.WithNotifier(n))
	}, nil)
	t.Cleanup(store.Close)
	return store
}

var validInput = models.ContactInput{Name: "Ana", Email: "ana@x.com", Message: "Hola"}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t, time.Hour)

	session, err := store.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if session.ID == "" {
		t.Error("session.ID is empty")
	}
	if session.Flow == nil {
		t.Fatal("session has no flow")
	}

	got, ok := store.Get(session.ID)
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if got.Flow != session.Flow {
		t.Error("Get() returned a different flow")
	}
}

func TestStore_SessionsHaveIndependentFlows(t *testing.T) {
	store := newTestStore(t, time.Hour)

	a, _ := store.Create()
	b, _ := store.Create()
	a.Flow.Open()

	if b.Flow.IsOpen() {
		t.Error("opening one visitor's modal opened another's")
	}
}

func TestStore_GetExpired(t *testing.T) {
	store := newTestStore(t, time.Millisecond)

	session, _ := store.Create()
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(session.ID); ok {
		t.Error("Get() returned true for expired session")
	}
}

func TestStore_SweepStopsExpiredFlows(t *testing.T) {
	store := newTestStore(t, time.Minute)

	session, _ := store.Create()
	if err := session.Flow.Submit(context.Background(), validInput); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if n := store.sweep(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("sweep() removed %d sessions, want 1", n)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d after sweep", store.Len())
	}
	if err := session.Flow.Submit(context.Background(), validInput); err != contact.ErrStopped {
		t.Errorf("Submit() on swept session error = %v, want ErrStopped", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t, time.Hour)

	session, _ := store.Create()
	store.Delete(session.ID)

	if _, ok := store.Get(session.ID); ok {
		t.Error("Get() returned true after Delete()")
	}
	if err := session.Flow.Submit(context.Background(), validInput); err != contact.ErrStopped {
		t.Errorf("Submit() after Delete() error = %v, want ErrStopped", err)
	}
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	store := newTestStore(t, time.Hour)
	session, _ := store.Create()

	store.Close()
	store.Close()

	if store.Len() != 0 {
		t.Errorf("Len() = %d after Close()", store.Len())
	}
	if err := session.Flow.Submit(context.Background(), validInput); err != contact.ErrStopped {
		t.Errorf("Submit() after Close() error = %v", err)
	}
}

func TestSession_NoticeIsTakenOnce(t *testing.T) {
	store := NewStore(time.Hour, func(n contact.Notifier) *contact.Flow {
		return contact.NewFlow(senderFunc(func(context.Context, models.ContactInput) error {
			return &contact.RejectedError{StatusCode: 500}
		}), contact.WithNotifier(n))
	}, nil)
	defer store.Close()

	session, _ := store.Create()
	if _, ok := session.TakeNotice(); ok {
		t.Fatal("new session has a pending notice")
	}
	_ = session.Flow.Submit(context.Background(), validInput)

	n, ok := session.TakeNotice()
	if !ok || n != contact.NoticeRejected {
		t.Fatalf("TakeNotice() = %q, %v, want %q", n, ok, contact.NoticeRejected)
	}
	if _, ok := session.TakeNotice(); ok {
		t.Error("notice returned twice")
	}
}

type senderFunc func(context.Context, models.ContactInput) error

func (f senderFunc) Send(ctx context.Context, in models.ContactInput) error { return f(ctx, in) }

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != nil {
		t.Error("FromContext() on empty context returned a session")
	}
	s := &Session{ID: "x"}
	if got := FromContext(WithSession(context.Background(), s)); got != s {
		t.Error("FromContext() did not return the stored session")
	}
}
