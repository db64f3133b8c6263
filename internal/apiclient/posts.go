package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/loganlanou/dealerpost/internal/types"
)

func (c *Client) ListPosts(ctx context.Context, page Page) ([]Post, error) {
	posts := []Post{}
	if err := c.getJSON(ctx, "/api/posts/"+page.query(), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GeneratePost(ctx context.Context, req types.GeneratePostRequest) (*Post, error) {
	var post Post
	if err := c.sendJSON(ctx, http.MethodPost, "/api/posts/generate", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) PostVariations(ctx context.Context, productID, platform string, count int) (*types.VariationsResponse, error) {
	v := url.Values{}
	if platform != "" {
		v.Set("platform", platform)
	}
	if count > 0 {
		v.Set("count", strconv.Itoa(count))
	}
	path := "/api/posts/variations/" + url.PathEscape(productID)
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var resp types.VariationsResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PublishPost(ctx context.Context, id string) (*PublishResponse, error) {
	var resp PublishResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/posts/"+url.PathEscape(id)+"/publish", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) (*types.Message, error) {
	var resp types.Message
	if err := c.sendJSON(ctx, http.MethodDelete, "/api/posts/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
