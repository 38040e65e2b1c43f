package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/repositories"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

var (
	_ repositories.IUserRepository         = (*fakeUsers)(nil)
	_ repositories.IAdminRequestRepository = (*fakeAdminRequests)(nil)
	_ repositories.IClubRepository         = (*fakeClubs)(nil)
	_ repositories.IEventRepository        = (*fakeEvents)(nil)
	_ repositories.IRegistrationRepository = (*fakeRegistrations)(nil)
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// memStore backs every fake repository so cascades and joins behave like the database
type memStore struct {
	seq      int
	users    []*models.User
	requests []*models.AdminRequest
	clubs    []*models.Club
	members  map[models.ClubID][]models.UserID
	events   []*models.Event
	regs     []*models.Registration
}

func newMemStore() *memStore {
	return &memStore{members: make(map[models.ClubID][]models.UserID)}
}

func (m *memStore) tick() time.Time {
	m.seq++
	return testNow.Add(time.Duration(m.seq) * time.Second)
}

func (m *memStore) usersWithRole(role models.Role) ([]models.UserID, error) {
	var ids []models.UserID
	for _, u := range m.users {
		if u.Role == role {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

// trackingTx runs fn directly and records whether a transaction is open
type trackingTx struct {
	open bool
}

func (tx *trackingTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.open = true
	defer func() { tx.open = false }()
	return fn(ctx)
}

type recordingRevoker struct {
	tx          *trackingTx
	revoked     map[models.UserID]int
	afterCommit map[models.UserID]int
}

func (r *recordingRevoker) RevokeUser(_ context.Context, id models.UserID) error {
	if r.revoked == nil {
		r.revoked = make(map[models.UserID]int)
		r.afterCommit = make(map[models.UserID]int)
	}
	r.revoked[id]++
	if r.tx != nil && !r.tx.open {
		r.afterCommit[id]++
	}
	return nil
}

func (r *recordingRevoker) IsRevoked(_ context.Context, id models.UserID, _ time.Time) (bool, error) {
	return r.revoked[id] > 0, nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateToken(u *models.User) (string, int, error) {
	return "token-" + string(u.ID) + "-" + string(u.Role), 3600, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(pw string) (string, error) { return "hashed:" + pw, nil }
func (fakeHasher) Check(hash, pw string) bool     { return hash == "hashed:"+pw }

// env wires all services to one in-memory store
type env struct {
	store    *memStore
	revoker  *recordingRevoker
	services *Services
}

func newEnv() *env {
	return newEnvWithLogger(zerolog.Nop())
}

func newEnvWithLogger(lgr zerolog.Logger) *env {
	store := newMemStore()
	tx := &trackingTx{}
	revoker := &recordingRevoker{tx: tx}
	deps := Dependencies{
		Users:         &fakeUsers{store},
		AdminRequests: &fakeAdminRequests{store},
		Clubs:         &fakeClubs{store},
		Events:        &fakeEvents{store},
		Registrations: &fakeRegistrations{store},
		Tx:            tx,
		Revoker:       revoker,
		Logger:        lgr,
		Now:           func() time.Time { return testNow },
	}
	return &env{
		store:    store,
		revoker:  revoker,
		services: NewServices(deps, fakeTokens{}, fakeHasher{}),
	}
}

func actorOf(u *models.User) auth.Actor {
	return auth.Actor{ID: u.ID, Role: u.Role}
}

// --- users ---

type fakeUsers struct{ m *memStore }

func (f *fakeUsers) find(id models.UserID) *models.User {
	for _, u := range f.m.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (f *fakeUsers) view(u *models.User) *models.User {
	cp := *u
	cp.ClubsJoined = []models.ClubID{}
	for _, c := range f.m.clubs {
		for _, uid := range f.m.members[c.ID] {
			if uid == u.ID {
				cp.ClubsJoined = append(cp.ClubsJoined, c.ID)
			}
		}
	}
	return &cp
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range f.m.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.CreatedAt = f.m.tick()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.m.users = append(f.m.users, &cp)
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id models.UserID) (*models.User, error) {
	if u := f.find(id); u != nil {
		return f.view(u), nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.m.users {
		if u.Email == email {
			return f.view(u), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) List(context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.m.users))
	for _, u := range f.m.users {
		out = append(out, f.view(u))
	}
	return out, nil
}

func (f *fakeUsers) Count(context.Context) (int, error) { return len(f.m.users), nil }

func (f *fakeUsers) UpdateRole(_ context.Context, id models.UserID, role models.Role) error {
	u := f.find(id)
	if u == nil {
		return apperrors.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id models.UserID) error {
	if f.find(id) == nil {
		return apperrors.ErrUserNotFound
	}
	users := f.m.users[:0]
	for _, u := range f.m.users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	f.m.users = users

	events := f.m.events[:0]
	for _, e := range f.m.events {
		if e.CreatedBy != id {
			events = append(events, e)
		}
	}
	f.m.events = events

	regs := f.m.regs[:0]
	for _, r := range f.m.regs {
		if r.UserID != id && (&fakeEvents{f.m}).find(r.EventID) != nil {
			regs = append(regs, r)
		}
	}
	f.m.regs = regs

	clubs := f.m.clubs[:0]
	for _, c := range f.m.clubs {
		if c.OwnerID != id {
			clubs = append(clubs, c)
		} else {
			delete(f.m.members, c.ID)
		}
	}
	f.m.clubs = clubs

	for cid, ids := range f.m.members {
		kept := ids[:0]
		for _, uid := range ids {
			if uid != id {
				kept = append(kept, uid)
			}
		}
		f.m.members[cid] = kept
	}
	return nil
}

func (f *fakeUsers) LockAdmins(context.Context) ([]models.UserID, error) {
	return f.m.usersWithRole(models.RoleAdmin)
}

func (f *fakeUsers) LockBootstrap(context.Context) error { return nil }

// --- admin requests ---

type fakeAdminRequests struct{ m *memStore }

func (f *fakeAdminRequests) Create(_ context.Context, req *models.AdminRequest) error {
	for _, r := range f.m.requests {
		if r.UserID == req.UserID && r.IsPending() {
			return apperrors.NewConflictError("a pending admin request already exists for this user")
		}
	}
	req.RequestedAt = f.m.tick()
	cp := *req
	f.m.requests = append(f.m.requests, &cp)
	return nil
}

func (f *fakeAdminRequests) GetByID(_ context.Context, id models.AdminRequestID) (*models.AdminRequest, error) {
	for _, r := range f.m.requests {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAdminRequestNotFound
}

func (f *fakeAdminRequests) list(pendingOnly bool) []*models.AdminRequest {
	out := []*models.AdminRequest{}
	for i := len(f.m.requests) - 1; i >= 0; i-- {
		r := f.m.requests[i]
		if pendingOnly && !r.IsPending() {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out
}

func (f *fakeAdminRequests) ListPending(context.Context) ([]*models.AdminRequest, error) {
	return f.list(true), nil
}

func (f *fakeAdminRequests) ListAll(context.Context) ([]*models.AdminRequest, error) {
	return f.list(false), nil
}

func (f *fakeAdminRequests) Resolve(_ context.Context, id models.AdminRequestID, status models.AdminRequestStatus, by models.UserID, at time.Time) error {
	for _, r := range f.m.requests {
		if r.ID == id && r.IsPending() {
			r.Status, r.ResolvedAt, r.ResolvedBy = status, &at, &by
			return nil
		}
	}
	return apperrors.ErrAdminRequestNotPending
}

func (f *fakeAdminRequests) ResolvePendingForUser(_ context.Context, userID models.UserID, status models.AdminRequestStatus, by models.UserID, at time.Time) (bool, error) {
	for _, r := range f.m.requests {
		if r.UserID == userID && r.IsPending() {
			r.Status, r.ResolvedAt, r.ResolvedBy = status, &at, &by
			return true, nil
		}
	}
	return false, nil
}

// --- clubs ---

type fakeClubs struct{ m *memStore }

func (f *fakeClubs) find(id models.ClubID) *models.Club {
	for _, c := range f.m.clubs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (f *fakeClubs) view(c *models.Club) *models.Club {
	cp := *c
	cp.Photos = append([]string{}, c.Photos...)
	users := &fakeUsers{f.m}
	if owner := users.find(c.OwnerID); owner != nil {
		cp.Owner = &models.User{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}
	cp.Members = []*models.User{}
	for _, uid := range f.m.members[c.ID] {
		if u := users.find(uid); u != nil {
			cp.Members = append(cp.Members, &models.User{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	return &cp
}

func (f *fakeClubs) Create(_ context.Context, club *models.Club) error {
	for _, c := range f.m.clubs {
		if c.OwnerID == club.OwnerID {
			return apperrors.ErrClubAlreadyOwned
		}
	}
	club.CreatedAt = f.m.tick()
	club.UpdatedAt = club.CreatedAt
	cp := *club
	f.m.clubs = append(f.m.clubs, &cp)
	return nil
}

func (f *fakeClubs) GetByID(_ context.Context, id models.ClubID) (*models.Club, error) {
	if c := f.find(id); c != nil {
		return f.view(c), nil
	}
	return nil, apperrors.ErrClubNotFound
}

func (f *fakeClubs) GetByOwner(_ context.Context, ownerID models.UserID) (*models.Club, error) {
	for _, c := range f.m.clubs {
		if c.OwnerID == ownerID {
			return f.view(c), nil
		}
	}
	return nil, apperrors.ErrClubNotFound
}

func (f *fakeClubs) List(context.Context) ([]*models.Club, error) {
	out := make([]*models.Club, 0, len(f.m.clubs))
	for _, c := range f.m.clubs {
		out = append(out, f.view(c))
	}
	return out, nil
}

func (f *fakeClubs) Update(_ context.Context, club *models.Club) error {
	c := f.find(club.ID)
	if c == nil {
		return apperrors.ErrClubNotFound
	}
	c.Name, c.Description = club.Name, club.Description
	c.UpdatedAt = f.m.tick()
	club.UpdatedAt = c.UpdatedAt
	return nil
}

func (f *fakeClubs) Delete(_ context.Context, id models.ClubID) error {
	for i, c := range f.m.clubs {
		if c.ID == id {
			f.m.clubs = append(f.m.clubs[:i], f.m.clubs[i+1:]...)
			delete(f.m.members, id)
			return nil
		}
	}
	return apperrors.ErrClubNotFound
}

func (f *fakeClubs) AddMember(_ context.Context, clubID models.ClubID, userID models.UserID) error {
	for _, uid := range f.m.members[clubID] {
		if uid == userID {
			return apperrors.ErrAlreadyClubMember
		}
	}
	f.m.members[clubID] = append(f.m.members[clubID], userID)
	return nil
}

func (f *fakeClubs) IsMember(_ context.Context, clubID models.ClubID, userID models.UserID) (bool, error) {
	for _, uid := range f.m.members[clubID] {
		if uid == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClubs) AddPhoto(_ context.Context, id models.ClubID, url string) error {
	c := f.find(id)
	if c == nil {
		return apperrors.ErrClubNotFound
	}
	c.Photos = append(c.Photos, url)
	return nil
}

func (f *fakeClubs) RemovePhoto(_ context.Context, id models.ClubID, url string) error {
	c := f.find(id)
	if c == nil {
		return apperrors.ErrClubNotFound
	}
	kept := []string{}
	for _, p := range c.Photos {
		if p != url {
			kept = append(kept, p)
		}
	}
	c.Photos = kept
	return nil
}

func (f *fakeClubs) AdjustEventsCount(_ context.Context, ownerID models.UserID, delta int) error {
	for _, c := range f.m.clubs {
		if c.OwnerID == ownerID {
			c.EventsCount = max(c.EventsCount+delta, 0)
		}
	}
	return nil
}

// --- events ---

type fakeEvents struct{ m *memStore }

func (f *fakeEvents) find(id models.EventID) *models.Event {
	for _, e := range f.m.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (f *fakeEvents) view(e *models.Event) *models.Event {
	cp := *e
	users := &fakeUsers{f.m}
	if creator := users.find(e.CreatedBy); creator != nil {
		cp.Creator = &models.User{ID: creator.ID, Name: creator.Name, Email: creator.Email}
	}
	cp.Participants = []*models.User{}
	for _, r := range f.m.regs {
		if r.EventID != e.ID {
			continue
		}
		if u := users.find(r.UserID); u != nil {
			cp.Participants = append(cp.Participants, &models.User{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	return &cp
}

func (f *fakeEvents) Create(_ context.Context, event *models.Event) error {
	event.CreatedAt = f.m.tick()
	event.UpdatedAt = event.CreatedAt
	cp := *event
	f.m.events = append(f.m.events, &cp)
	return nil
}

func (f *fakeEvents) GetByID(_ context.Context, id models.EventID) (*models.Event, error) {
	if e := f.find(id); e != nil {
		return f.view(e), nil
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeEvents) list(keep func(*models.Event) bool) []*models.Event {
	out := []*models.Event{}
	for _, e := range f.m.events {
		if keep(e) {
			out = append(out, f.view(e))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (f *fakeEvents) List(context.Context) ([]*models.Event, error) {
	return f.list(func(*models.Event) bool { return true }), nil
}

func (f *fakeEvents) ListByCreator(_ context.Context, creatorID models.UserID) ([]*models.Event, error) {
	return f.list(func(e *models.Event) bool { return e.CreatedBy == creatorID }), nil
}

func (f *fakeEvents) Update(_ context.Context, event *models.Event) error {
	e := f.find(event.ID)
	if e == nil {
		return apperrors.ErrEventNotFound
	}
	count := e.RegistrationsCount
	*e = *event
	e.Creator, e.Participants = nil, nil
	e.RegistrationsCount = count
	e.UpdatedAt = f.m.tick()
	event.UpdatedAt = e.UpdatedAt
	return nil
}

func (f *fakeEvents) Delete(_ context.Context, id models.EventID) error {
	for i, e := range f.m.events {
		if e.ID == id {
			f.m.events = append(f.m.events[:i], f.m.events[i+1:]...)
			regs := f.m.regs[:0]
			for _, r := range f.m.regs {
				if r.EventID != id {
					regs = append(regs, r)
				}
			}
			f.m.regs = regs
			return nil
		}
	}
	return apperrors.ErrEventNotFound
}

func (f *fakeEvents) IncrementRegistrations(_ context.Context, id models.EventID) error {
	e := f.find(id)
	if e == nil {
		return apperrors.ErrEventNotFound
	}
	e.RegistrationsCount++
	return nil
}

func (f *fakeEvents) ReleaseRegistrationsOf(_ context.Context, userID models.UserID) error {
	for _, r := range f.m.regs {
		if r.UserID != userID {
			continue
		}
		if e := f.find(r.EventID); e != nil {
			e.RegistrationsCount = max(e.RegistrationsCount-1, 0)
		}
	}
	return nil
}

// --- registrations ---

type fakeRegistrations struct{ m *memStore }

func (f *fakeRegistrations) Create(_ context.Context, reg *models.Registration) error {
	for _, r := range f.m.regs {
		if r.UserID == reg.UserID && r.EventID == reg.EventID {
			return apperrors.ErrAlreadyRegistered
		}
	}
	reg.RegisteredAt = f.m.tick()
	cp := *reg
	f.m.regs = append(f.m.regs, &cp)
	return nil
}

func (f *fakeRegistrations) Exists(_ context.Context, userID models.UserID, eventID models.EventID) (bool, error) {
	for _, r := range f.m.regs {
		if r.UserID == userID && r.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistrations) ListByUser(_ context.Context, userID models.UserID) ([]*models.Registration, error) {
	events := &fakeEvents{f.m}
	out := []*models.Registration{}
	for i := len(f.m.regs) - 1; i >= 0; i-- {
		r := f.m.regs[i]
		if r.UserID != userID {
			continue
		}
		cp := *r
		if e := events.find(r.EventID); e != nil {
			cp.Event = events.view(e)
		}
		out = append(out, &cp)
	}
	return out, nil
}
