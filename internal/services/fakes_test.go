package services

import (
	"context"
	"fmt"
	"time"

	"happenly/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	nextID    int
	createErr error
	listErr   error
	updateErr error
	deleteErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: map[string]*domain.Event{}, nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("event-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for i := 1; i < f.nextID; i++ {
		id := fmt.Sprintf("event-%d", i)
		if e, ok := f.byID[id]; ok && e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = upd.Description
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Time != nil {
		e.Time = upd.Time
	}
	if upd.Venue != nil {
		e.Venue = upd.Venue
	}
	if upd.Category != nil {
		e.Category = upd.Category
	}
	if upd.Budget != nil {
		e.Budget = *upd.Budget
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	e.UpdatedAt = time.Now()
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeGuestRepo is an in-memory GuestRepository for tests.
type fakeGuestRepo struct {
	byID      map[string]*domain.Guest
	nextID    int
	createErr error
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{byID: map[string]*domain.Guest{}, nextID: 1}
}

func (f *fakeGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	if f.createErr != nil {
		return f.createErr
	}
	g.ID = fmt.Sprintf("guest-%d", f.nextID)
	f.nextID++
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (f *fakeGuestRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	var out []*domain.Guest
	for i := 1; i < f.nextID; i++ {
		id := fmt.Sprintf("guest-%d", i)
		if g, ok := f.byID[id]; ok && g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, id string, upd domain.GuestUpdate) (*domain.Guest, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.Email != nil {
		g.Email = *upd.Email
	}
	if upd.Contact != nil {
		g.Contact = upd.Contact
	}
	if upd.RSVPStatus != nil {
		g.RSVPStatus = *upd.RSVPStatus
	}
	return g, nil
}

func (f *fakeGuestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeVendorRepo is an in-memory VendorRepository for tests.
type fakeVendorRepo struct {
	byID   map[string]*domain.Vendor
	nextID int
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{byID: map[string]*domain.Vendor{}, nextID: 1}
}

func (f *fakeVendorRepo) Create(ctx context.Context, v *domain.Vendor) error {
	v.ID = fmt.Sprintf("vendor-%d", f.nextID)
	f.nextID++
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVendorRepo) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeVendorRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Vendor, error) {
	var out []*domain.Vendor
	for i := 1; i < f.nextID; i++ {
		id := fmt.Sprintf("vendor-%d", i)
		if v, ok := f.byID[id]; ok && v.EventID == eventID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) Update(ctx context.Context, id string, upd domain.VendorUpdate) (*domain.Vendor, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		v.Name = *upd.Name
	}
	if upd.Type != nil {
		v.Type = upd.Type
	}
	if upd.Contact != nil {
		v.Contact = upd.Contact
	}
	if upd.Cost != nil {
		v.Cost = upd.Cost
	}
	return v, nil
}

func (f *fakeVendorRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeTaskRepo is an in-memory TaskRepository for tests.
type fakeTaskRepo struct {
	byID      map[string]*domain.Task
	nextID    int
	reminders []*domain.TaskReminder
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: map[string]*domain.Task{}, nextID: 1}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	t.ID = fmt.Sprintf("task-%d", f.nextID)
	f.nextID++
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for i := 1; i < f.nextID; i++ {
		id := fmt.Sprintf("task-%d", i)
		if t, ok := f.byID[id]; ok && t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = upd.Description
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	if upd.AssignedTo != nil {
		t.AssignedTo = *upd.AssignedTo
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	return t, nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeTaskRepo) ListRemindersDueOn(ctx context.Context, date string) ([]*domain.TaskReminder, error) {
	var out []*domain.TaskReminder
	for _, r := range f.reminders {
		if r.DueDate == date {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// fakeHasher is a transparent PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// fakeTokenIssuer returns a predictable token for tests.
type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-" + userID, nil
}

// fakeEmailService records sent emails for tests.
type fakeEmailService struct {
	welcomes  []*domain.WelcomeEmailData
	reminders []*domain.TaskReminderEmailData
	sendErr   error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}

func (f *fakeEmailService) SendTaskReminder(ctx context.Context, data *domain.TaskReminderEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.reminders = append(f.reminders, data)
	return nil
}
