package youtube

import (
	"context"
	"errors"
	"fmt"

	"video-detective/internal/models"
	"video-detective/shared/config"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	defaultDescription = "No description available"
	defaultChannel     = "Unknown"
	defaultDuration    = "PT0S"
)

var (
	// ErrVideoNotFound means the catalog returned no item for the ID.
	ErrVideoNotFound = errors.New("video not found")
	// ErrMalformedVideo means the catalog item lacks a snippet or title.
	ErrMalformedVideo = errors.New("malformed video metadata")
)

var videoParts = []string{"snippet", "contentDetails", "statistics"}

type Client struct {
	service *youtube.Service
}

// NewClient builds a Data API client keyed by the configured API key. Extra
// options are appended after the key, so tests can point it elsewhere.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig, opts ...option.ClientOption) (*Client, error) {
	clientOpts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)

	service, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// FetchVideo issues a single videos.list lookup for videoID.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*models.Video, error) {
	response, err := c.service.Videos.List(videoParts).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, err)
	}

	if len(response.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	return videoFromItem(videoID, response.Items[0])
}

func videoFromItem(videoID string, item *youtube.Video) (*models.Video, error) {
	if item.Snippet == nil || item.Snippet.Title == "" {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrMalformedVideo)
	}

	video := &models.Video{
		ID:           videoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
		Duration:     defaultDuration,
	}

	if video.Description == "" {
		video.Description = defaultDescription
	}
	if video.ChannelTitle == "" {
		video.ChannelTitle = defaultChannel
	}
	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		video.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		video.ViewCount = item.Statistics.ViewCount
	}

	return video, nil
}
