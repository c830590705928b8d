package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var (
	_ repository.UserRepository   = (*UserRepo)(nil)
	_ repository.ClientRepository = (*ClientRepo)(nil)
)

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.s.with(func(d *state) error {
		for _, u := range d.users {
			if strings.EqualFold(u.Email, user.Email) {
				return domain.ErrDuplicate
			}
		}
		user.ID = d.next("users")
		d.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	var out *entity.User
	err := r.s.with(func(d *state) error {
		if u, ok := d.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.s.with(func(d *state) error {
		for _, u := range d.users {
			if strings.EqualFold(u.Email, email) {
				u := u
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	return r.s.with(func(d *state) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrNotFound
		}
		u.LastLogin = &at
		d.users[id] = u
		return nil
	})
}

// SetActive activa o desactiva un usuario (tests).
func (r *UserRepo) SetActive(id int64, active bool) {
	_ = r.s.with(func(d *state) error {
		if u, ok := d.users[id]; ok {
			u.IsActive = active
			d.users[id] = u
		}
		return nil
	})
}

// ClientRepo clients y membresías en memoria.
type ClientRepo struct{ s *Store }

// Clients devuelve el repositorio de clients.
func (s *Store) Clients() *ClientRepo { return &ClientRepo{s: s} }

func (r *ClientRepo) Create(_ context.Context, client *entity.Client) error {
	return r.s.with(func(d *state) error {
		for _, c := range d.clients {
			if c.Slug == client.Slug {
				return domain.ErrDuplicate
			}
		}
		client.ID = d.next("clients")
		d.clients[client.ID] = *client
		return nil
	})
}

func (r *ClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	var out *entity.Client
	err := r.s.with(func(d *state) error {
		if c, ok := d.clients[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *ClientRepo) GetBySlug(_ context.Context, slug string) (*entity.Client, error) {
	var out *entity.Client
	err := r.s.with(func(d *state) error {
		for _, c := range d.clients {
			if c.Slug == slug {
				c := c
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *ClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	err := r.s.with(func(d *state) error {
		for _, id := range sortedByID(d.clients, func(entity.Client) bool { return true }) {
			c := d.clients[id]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *ClientRepo) AddMember(_ context.Context, clientID, userID int64) error {
	return r.s.with(func(d *state) error {
		if _, ok := d.clients[clientID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := d.users[userID]; !ok {
			return domain.ErrNotFound
		}
		key := [2]int64{clientID, userID}
		if _, ok := d.members[key]; ok {
			return nil
		}
		now := r.s.now()
		d.members[key] = entity.ClientUser{ID: d.next("client_users"), ClientID: clientID, UserID: userID, CreatedAt: now, UpdatedAt: now}
		return nil
	})
}

func (r *ClientRepo) RemoveMember(_ context.Context, clientID, userID int64) error {
	return r.s.with(func(d *state) error {
		key := [2]int64{clientID, userID}
		if _, ok := d.members[key]; !ok {
			return domain.ErrNotFound
		}
		delete(d.members, key)
		return nil
	})
}

func (r *ClientRepo) IsMember(_ context.Context, clientID, userID int64) (bool, error) {
	var ok bool
	err := r.s.with(func(d *state) error {
		_, ok = d.members[[2]int64{clientID, userID}]
		return nil
	})
	return ok, err
}

func (r *ClientRepo) ListClientIDs(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.s.with(func(d *state) error {
		for key := range d.members {
			if key[1] == userID {
				ids = append(ids, key[0])
			}
		}
		return nil
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, err
}
