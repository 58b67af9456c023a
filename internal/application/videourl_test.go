package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/creatortools/internal/application"
	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://youtube.com/watch?feature=share&v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://youtu.be/dQw4w9WgXcQ?t=42", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/shorts/abcdefghijk", want: "abcdefghijk"},
		{in: "  dQw4w9WgXcQ  ", want: "dQw4w9WgXcQ"},
		{in: "https://vimeo.com/12345", wantErr: true},
		{in: "", wantErr: true},
		{in: "tooshort", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := application.ExtractVideoID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, application.ErrInvalidVideoURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractChannelRef(t *testing.T) {
	tests := []struct {
		in      string
		want    model.ChannelRef
		wantErr bool
	}{
		{in: "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw", want: model.ChannelRef{Kind: model.ChannelRefID, Value: "UCuAXFkgsw1L7xaCfnd5JJOw"}},
		{in: "https://www.youtube.com/@MrBeast/videos", want: model.ChannelRef{Kind: model.ChannelRefHandle, Value: "MrBeast"}},
		{in: "https://www.youtube.com/c/LinusTechTips", want: model.ChannelRef{Kind: model.ChannelRefHandle, Value: "LinusTechTips"}},
		{in: "https://www.youtube.com/user/pewdiepie", want: model.ChannelRef{Kind: model.ChannelRefUsername, Value: "pewdiepie"}},
		{in: "UCuAXFkgsw1L7xaCfnd5JJOw", want: model.ChannelRef{Kind: model.ChannelRefID, Value: "UCuAXFkgsw1L7xaCfnd5JJOw"}},
		{in: "@veritasium", want: model.ChannelRef{Kind: model.ChannelRefHandle, Value: "veritasium"}},
		{in: "veritasium", want: model.ChannelRef{Kind: model.ChannelRefHandle, Value: "veritasium"}},
		{in: "https://example.com/@someone", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := application.ExtractChannelRef(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, application.ErrInvalidChannelRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
