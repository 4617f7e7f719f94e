package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/mail"
	"github.com/larekshop/larek-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

type fakeProductRepo struct {
	products map[uuid.UUID]*types.Product
	updates  int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*types.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	for _, p := range products {
		cp := *p
		f.products[p.ID] = &cp
	}
	return products, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Product, error) {
	var out []*types.Product
	for _, id := range productIDs {
		if p, ok := f.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	var out []*types.Product
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) error {
	f.updates++
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) error {
	for _, id := range productIDs {
		delete(f.products, id)
	}
	return nil
}

type fakeVersionRepo struct {
	versions []*types.Version
}

func (f *fakeVersionRepo) Create(ctx context.Context, tx *gorm.DB, versions []*types.Version) ([]*types.Version, error) {
	f.versions = append(f.versions, versions...)
	return versions, nil
}

func (f *fakeVersionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, versionIDs []uuid.UUID) ([]*types.Version, error) {
	var out []*types.Version
	for _, id := range versionIDs {
		for _, v := range f.versions {
			if v.ID == id {
				out = append(out, v)
			}
		}
	}
	return out, nil
}

func (f *fakeVersionRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Version, error) {
	var out []*types.Version
	for _, v := range f.versions {
		for _, id := range productIDs {
			if v.ProductID != nil && *v.ProductID == id {
				out = append(out, v)
			}
		}
	}
	return out, nil
}

func (f *fakeVersionRepo) GetCurrentByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Version, error) {
	var out []*types.Version
	for _, v := range f.versions {
		if v.ProductID != nil && *v.ProductID == productID && v.IsCurrentVersion {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVersionRepo) Update(ctx context.Context, tx *gorm.DB, version *types.Version) error {
	for i, v := range f.versions {
		if v.ID == version.ID {
			f.versions[i] = version
			return nil
		}
	}
	return fmt.Errorf("version not found")
}

func (f *fakeVersionRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, versionIDs []uuid.UUID) error {
	var kept []*types.Version
	for _, v := range f.versions {
		drop := false
		for _, id := range versionIDs {
			if v.ID == id {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, v)
		}
	}
	f.versions = kept
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*types.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	for _, u := range users {
		cp := *u
		f.users[u.ID] = &cp
	}
	return users, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error) {
	var out []*types.User
	for _, id := range userIDs {
		if u, ok := f.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, userEmails []string) ([]*types.User, error) {
	var out []*types.User
	for _, u := range f.users {
		for _, e := range userEmails {
			if u.Email == e {
				cp := *u
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByTokens(ctx context.Context, tx *gorm.DB, tokens []string) ([]*types.User, error) {
	var out []*types.User
	for _, u := range f.users {
		for _, tok := range tokens {
			if u.Token == tok {
				cp := *u
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error) {
	for _, u := range f.users {
		if u.Email == userEmail {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

type fakePermissionRepo struct {
	grants map[uuid.UUID]map[string]bool
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{grants: map[uuid.UUID]map[string]bool{}}
}

func (f *fakePermissionRepo) grant(userID uuid.UUID, codenames ...string) {
	if f.grants[userID] == nil {
		f.grants[userID] = map[string]bool{}
	}
	for _, c := range codenames {
		f.grants[userID][c] = true
	}
}

func (f *fakePermissionRepo) Grant(ctx context.Context, tx *gorm.DB, grants []*types.UserPermission) ([]*types.UserPermission, error) {
	for _, g := range grants {
		f.grant(g.UserID, g.Codename)
	}
	return grants, nil
}

func (f *fakePermissionRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserPermission, error) {
	var out []*types.UserPermission
	for _, id := range userIDs {
		for code := range f.grants[id] {
			out = append(out, &types.UserPermission{UserID: id, Codename: code})
		}
	}
	return out, nil
}

func (f *fakePermissionRepo) HasAll(ctx context.Context, tx *gorm.DB, userID uuid.UUID, codenames []string) (bool, error) {
	for _, c := range codenames {
		if !f.grants[userID][c] {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakePermissionRepo) RevokeByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	for _, id := range userIDs {
		delete(f.grants, id)
	}
	return nil
}

type fakeUserEventRepo struct {
	events []*types.UserEvent
}

func (f *fakeUserEventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.UserEvent) ([]*types.UserEvent, error) {
	f.events = append(f.events, events...)
	return events, nil
}

func (f *fakeUserEventRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserEvent, error) {
	var out []*types.UserEvent
	for _, e := range f.events {
		for _, id := range userIDs {
			if e.UserID == id {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

type fakeMailer struct {
	sent    []mail.Message
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}
