package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/larekshop/larek-backend/internal/apperr"
	"github.com/larekshop/larek-backend/internal/types"
)

type fakeBucket struct {
	uploaded []string
}

func (f *fakeBucket) UploadFile(ctx context.Context, key string, file io.Reader) error {
	f.uploaded = append(f.uploaded, key)
	return nil
}

func (f *fakeBucket) DeleteFile(ctx context.Context, key string) error { return nil }

func (f *fakeBucket) ReplaceFile(ctx context.Context, key string, newFile io.Reader) error {
	f.uploaded = append(f.uploaded, key)
	return nil
}

func (f *fakeBucket) GetPublicURL(key string) string {
	return "https://cdn.example/" + key
}

func newMediaFixture(t *testing.T) (MediaService, *fakeBucket, *fakeProductRepo, *fakePostRepo, *fakePermissionRepo) {
	t.Helper()
	log := testLogger(t)
	bucket := &fakeBucket{}
	productRepo := newFakeProductRepo()
	postRepo := newFakePostRepo()
	perms := newFakePermissionRepo()
	policy := NewPolicyService(nil, log, perms)
	svc := NewMediaService(nil, log, bucket, policy, productRepo, postRepo)
	return svc, bucket, productRepo, postRepo, perms
}

func TestUploadsRefusedWithoutBucket(t *testing.T) {
	log := testLogger(t)
	productRepo := newFakeProductRepo()
	postRepo := newFakePostRepo()
	policy := NewPolicyService(nil, log, newFakePermissionRepo())
	svc := NewMediaService(nil, log, nil, policy, productRepo, postRepo)
	ctx := context.Background()

	owner := uuid.New()
	product := &types.Product{ID: uuid.New(), Name: "teapot", OwnerID: &owner}
	productRepo.Create(ctx, nil, []*types.Product{product})
	postRepo.Create(ctx, nil, []*types.Post{{ID: uuid.New(), Title: "news", Slug: "news"}})

	_, err := svc.UploadProductPhoto(ctx, owner, product.ID, "front.png", strings.NewReader("img"))
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Status != http.StatusServiceUnavailable || ae.Code != "storage_unavailable" {
		t.Fatalf("expected a 503 storage_unavailable error, got %v", err)
	}
	if productRepo.updates != 0 {
		t.Fatalf("product must stay untouched when storage is missing, got %d updates", productRepo.updates)
	}

	_, err = svc.UploadPostPreview(ctx, "news", "cover.jpg", strings.NewReader("img"))
	if !errors.As(err, &ae) || ae.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected a 503 storage_unavailable error for previews, got %v", err)
	}
}

func TestUploadProductPhotoStoresAndLinks(t *testing.T) {
	svc, bucket, productRepo, _, _ := newMediaFixture(t)
	ctx := context.Background()

	owner := uuid.New()
	product := &types.Product{ID: uuid.New(), Name: "teapot", OwnerID: &owner}
	productRepo.Create(ctx, nil, []*types.Product{product})

	url, err := svc.UploadProductPhoto(ctx, owner, product.ID, "front.png", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("UploadProductPhoto: %v", err)
	}
	wantKey := "catalog/" + product.ID.String() + ".png"
	if len(bucket.uploaded) != 1 || bucket.uploaded[0] != wantKey {
		t.Fatalf("expected upload under %q, got %v", wantKey, bucket.uploaded)
	}
	if url != "https://cdn.example/"+wantKey {
		t.Fatalf("unexpected public URL %q", url)
	}
	if productRepo.products[product.ID].Photo != url {
		t.Fatalf("product photo not persisted, got %q", productRepo.products[product.ID].Photo)
	}
}

func TestUploadProductPhotoDeniedForStranger(t *testing.T) {
	svc, bucket, productRepo, _, _ := newMediaFixture(t)
	ctx := context.Background()

	owner := uuid.New()
	product := &types.Product{ID: uuid.New(), Name: "teapot", OwnerID: &owner}
	productRepo.Create(ctx, nil, []*types.Product{product})

	_, err := svc.UploadProductPhoto(ctx, uuid.New(), product.ID, "front.png", strings.NewReader("img"))
	if !errors.Is(err, apperr.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if len(bucket.uploaded) != 0 {
		t.Fatalf("nothing should reach the bucket on a denied upload, got %v", bucket.uploaded)
	}
}

func TestUploadPostPreviewStoresAndLinks(t *testing.T) {
	svc, bucket, _, postRepo, _ := newMediaFixture(t)
	ctx := context.Background()

	post := &types.Post{ID: uuid.New(), Title: "news", Slug: "news"}
	postRepo.Create(ctx, nil, []*types.Post{post})

	url, err := svc.UploadPostPreview(ctx, "news", "cover.jpg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("UploadPostPreview: %v", err)
	}
	wantKey := "blog/" + post.ID.String() + ".jpg"
	if len(bucket.uploaded) != 1 || bucket.uploaded[0] != wantKey {
		t.Fatalf("expected upload under %q, got %v", wantKey, bucket.uploaded)
	}
	if postRepo.posts[post.ID].Preview != url {
		t.Fatalf("post preview not persisted, got %q", postRepo.posts[post.ID].Preview)
	}
}
