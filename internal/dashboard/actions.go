package dashboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/session"
	"github.com/loganlanou/dealerpost/internal/types"
)

// ErrConfirmationRequired is returned by DeletePost until the user has
// confirmed the deletion.
var ErrConfirmationRequired = errors.New("confirmation required")

// Actions are the dashboard mutations. Each one issues a single request,
// turns the outcome into a notification and, on success only, refetches
// the collection it changed.
type Actions struct {
	queries *Queries
}

func NewActions(queries *Queries) *Actions {
	return &Actions{queries: queries}
}

// failure builds the error text shown to the user. A non-success status
// gets the fixed message, a transport failure its own error text.
func failure(prefix, generic string, err error) session.Notification {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return session.Error(prefix + generic)
	}
	return session.Error(prefix + err.Error())
}

func (a *Actions) SyncProducts(ctx context.Context, v Viewer) session.Notification {
	resp, err := a.queries.client(v).SyncProducts(ctx)
	if err != nil {
		slog.Error("failed to sync products", "error", err, "user_id", v.UserID)
		return failure("Senkronizasyon hatası: ", "Senkronizasyon başarısız", err)
	}

	if _, err := a.queries.RefetchProducts(ctx, v); err != nil {
		slog.Error("failed to refetch products", "error", err, "user_id", v.UserID)
	}
	return session.Success(resp.Message)
}

func (a *Actions) PublishPost(ctx context.Context, v Viewer, id string) session.Notification {
	resp, err := a.queries.client(v).PublishPost(ctx, id)
	if err != nil {
		slog.Error("failed to publish post", "error", err, "user_id", v.UserID, "post_id", id)
		return failure("Yayınlama hatası: ", "Yayınlama başarısız", err)
	}

	if _, err := a.queries.RefetchPosts(ctx, v); err != nil {
		slog.Error("failed to refetch posts", "error", err, "user_id", v.UserID)
	}
	return session.Success(resp.Message)
}

// DeletePost deletes the post once confirmed is true. Without confirmation
// it returns ErrConfirmationRequired and sends nothing.
func (a *Actions) DeletePost(ctx context.Context, v Viewer, id string, confirmed bool) (session.Notification, error) {
	if !confirmed {
		return session.Notification{}, ErrConfirmationRequired
	}

	if _, err := a.queries.client(v).DeletePost(ctx, id); err != nil {
		slog.Error("failed to delete post", "error", err, "user_id", v.UserID, "post_id", id)
		return failure("Silme hatası: ", "Silme başarısız", err), nil
	}

	if _, err := a.queries.RefetchPosts(ctx, v); err != nil {
		slog.Error("failed to refetch posts", "error", err, "user_id", v.UserID)
	}
	return session.Success("Gönderi silindi"), nil
}

// GeneratePost drafts a new post for a product and refetches posts.
func (a *Actions) GeneratePost(ctx context.Context, v Viewer, productID, platform string) session.Notification {
	_, err := a.queries.client(v).GeneratePost(ctx, types.GeneratePostRequest{
		ProductID: productID,
		Platform:  platform,
	})
	if err != nil {
		slog.Error("failed to generate post", "error", err, "user_id", v.UserID, "product_id", productID)
		return failure("Gönderi oluşturma hatası: ", "Gönderi oluşturulamadı", err)
	}

	if _, err := a.queries.RefetchPosts(ctx, v); err != nil {
		slog.Error("failed to refetch posts", "error", err, "user_id", v.UserID)
	}
	return session.Success("Gönderi oluşturuldu")
}
