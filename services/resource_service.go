package services

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"conmates/api/dto"
	"conmates/models"
	"conmates/repositories"
)

// ResourceService exposes the tenant-rights resource catalog.
type ResourceService struct {
	repo *repositories.ResourceRepository
}

func NewResourceService(repo *repositories.ResourceRepository) *ResourceService {
	return &ResourceService{repo: repo}
}

type ListResourcesInput struct {
	Page     int
	PageSize int
}

func (s *ResourceService) List(ctx context.Context, in ListResourcesInput) (dto.Pagination[dto.ResourceDTO], *APIError) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 || in.PageSize > 100 {
		in.PageSize = 20
	}

	items, total, err := s.repo.List(ctx, repositories.ListResourcesOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
	})
	if err != nil {
		return dto.Pagination[dto.ResourceDTO]{}, &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "resource_list_failed", Cause: err}
	}

	out := make([]dto.ResourceDTO, 0, len(items))
	for _, r := range items {
		out = append(out, mapResource(r))
	}
	return dto.Pagination[dto.ResourceDTO]{
		Data:     out,
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}, nil
}

func (s *ResourceService) IncrementViewCount(ctx context.Context, hexID string) *APIError {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return &APIError{StatusCode: http.StatusBadRequest, ErrorCode: "invalid_resource_id", Cause: err}
	}
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return &APIError{StatusCode: http.StatusNotFound, ErrorCode: "resource_not_found", Cause: err}
		}
		return &APIError{StatusCode: http.StatusInternalServerError, ErrorCode: "resource_update_failed", Cause: err}
	}
	return nil
}

func mapResource(r models.Resource) dto.ResourceDTO {
	return dto.ResourceDTO{
		ID:          r.ID.Hex(),
		FeedName:    r.FeedName,
		Title:       r.Title,
		Link:        r.Link,
		PublishedAt: r.PublishedAt,
		Excerpt:     r.Excerpt,
		ViewCount:   r.ViewCount,
	}
}
