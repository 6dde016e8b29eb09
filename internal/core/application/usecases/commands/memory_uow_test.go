package commands_test

import (
	"context"
	"sync"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// memoryStore backs scenario tests that drive several handlers in a row.
// Transactions are not isolated. Parcels are stored as snapshots, so a
// handler only sees its changes after Update, and Commit collects the status
// changes of the parcels written in the unit of work into published.
type memoryStore struct {
	mu        sync.Mutex
	users     map[string]*user.User
	parcels   map[string]*parcel.Parcel
	history   []parcel.HistoryEntry
	published []parcel.StatusChanged
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   make(map[string]*user.User),
		parcels: make(map[string]*parcel.Parcel),
	}
}

func (s *memoryStore) Create() commands.UoW { return &memoryUoW{s: s} }

// putParcel stores a snapshot of p without announcing its pending events.
func (s *memoryStore) putParcel(p *parcel.Parcel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parcels[p.ID().String()] = snapshot(p)
}

// parcel returns the stored state of the parcel with id, or nil.
func (s *memoryStore) parcel(id kernel.UUID) *parcel.Parcel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.parcels[id.String()]; ok {
		return snapshot(p)
	}
	return nil
}

// snapshot copies p the way a database round trip would, dropping pending events.
func snapshot(p *parcel.Parcel) *parcel.Parcel {
	var messengerID *kernel.UUID
	if id := p.MessengerID(); id != nil {
		copied := *id
		messengerID = &copied
	}
	restored, err := parcel.RestoreParcel(p.ID(), p.TrackingCode(), p.Details(), p.Cost(), p.Status(),
		p.ClientID(), messengerID, p.CreatedAt(), p.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return restored
}

func (s *memoryStore) userFactory() commands.UserUoWFactory { return memoryUserFactory{s} }

func (s *memoryStore) parcelFactory() commands.ParcelUoWFactory { return memoryParcelFactory{s} }

type memoryUserFactory struct{ s *memoryStore }

func (f memoryUserFactory) Create() commands.UserUoW { return &memoryUoW{s: f.s} }

type memoryParcelFactory struct{ s *memoryStore }

func (f memoryParcelFactory) Create() commands.ParcelUoW { return &memoryUoW{s: f.s} }

type memoryUoW struct {
	s       *memoryStore
	tracked []*parcel.Parcel
}

func (u *memoryUoW) Begin(context.Context) error { return nil }

func (u *memoryUoW) Commit(context.Context) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, p := range u.tracked {
		u.s.published = append(u.s.published, p.DomainEvents()...)
		p.ClearDomainEvents()
	}
	u.tracked = nil
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	u.tracked = nil
	return nil
}

func (u *memoryUoW) UserRepository() ports.UserRepository       { return memoryUsers{u.s} }
func (u *memoryUoW) ParcelRepository() ports.ParcelRepository   { return memoryParcels{u} }
func (u *memoryUoW) HistoryRepository() ports.HistoryRepository { return memoryHistory{u.s} }

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) Add(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID().String()] = u
	return nil
}

func (r memoryUsers) Update(ctx context.Context, u *user.User) error { return r.Add(ctx, u) }

func (r memoryUsers) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id.String())
	return nil
}

func (r memoryUsers) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id.String()]; ok {
		return u, nil
	}
	return nil, errs.NewObjectNotFoundError("id", id.String())
}

func (r memoryUsers) find(match func(*user.User) bool) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("user", "")
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return r.find(func(u *user.User) bool { return u.Email() == email })
}

func (r memoryUsers) GetByVerificationToken(_ context.Context, token string) (*user.User, error) {
	return r.find(func(u *user.User) bool { return token != "" && u.VerificationToken() == token })
}

func (r memoryUsers) FindConflicts(_ context.Context, email, documentNumber string) (bool, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var emailTaken, documentTaken bool
	for _, u := range r.s.users {
		emailTaken = emailTaken || u.Email() == email
		documentTaken = documentTaken || u.Profile().DocumentNumber == documentNumber
	}
	return emailTaken, documentTaken, nil
}

func (r memoryUsers) GetMessengerCandidates(_ context.Context) ([]services.MessengerCandidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []services.MessengerCandidate
	for _, u := range r.s.users {
		if !u.IsDispatchable() {
			continue
		}
		load := 0
		for _, p := range r.s.parcels {
			if p.IsAssignedTo(u.ID()) && (p.Status() == parcel.InTransit || p.Status() == parcel.OutForDelivery) {
				load++
			}
		}
		out = append(out, services.MessengerCandidate{Messenger: u, ActiveLoad: load})
	}
	return out, nil
}

type memoryParcels struct{ u *memoryUoW }

func (r memoryParcels) Add(_ context.Context, p *parcel.Parcel) error {
	r.u.s.putParcel(p)
	r.u.tracked = append(r.u.tracked, p)
	return nil
}

func (r memoryParcels) Update(ctx context.Context, p *parcel.Parcel) error { return r.Add(ctx, p) }

func (r memoryParcels) Delete(_ context.Context, id kernel.UUID) error {
	s := r.u.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parcels[id.String()]; !ok {
		return errs.NewObjectNotFoundError("id", id.String())
	}
	delete(s.parcels, id.String())
	return nil
}

func (r memoryParcels) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if p := r.u.s.parcel(id); p != nil {
		return p, nil
	}
	return nil, errs.NewObjectNotFoundError("id", id.String())
}

func (r memoryParcels) GetByTrackingCode(_ context.Context, code parcel.TrackingCode) (*parcel.Parcel, error) {
	s := r.u.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.parcels {
		if p.TrackingCode() == code {
			return snapshot(p), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("tracking_code", code.String())
}

type memoryHistory struct{ s *memoryStore }

func (r memoryHistory) Add(_ context.Context, entry parcel.HistoryEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.history = append(r.s.history, entry)
	return nil
}
