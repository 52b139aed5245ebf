package directory

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/fieldbook/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	return New("http://directory/", client), client
}

func TestClient_Store(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(client *clients.MockHTTPClientI)
		want      *Store
	}{
		{
			name: "Wrapped entity",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), "http://directory/stores/s1", gomock.Nil()).
					Return(http.StatusOK, []byte(`{"data":{"id":"s1","name":"Arena"}}`), nil)
			},
			want: &Store{ID: "s1", Name: "Arena"},
		},
		{
			name: "Bare entity",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"id":"s1","name":"Arena"}`), nil)
			},
			want: &Store{ID: "s1", Name: "Arena"},
		},
		{
			name: "Not found",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusNotFound, nil, nil)
			},
		},
		{
			name: "Unreachable",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, errors.New("timeout"))
			},
		},
		{
			name: "Garbage body",
			mockSetup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte(`<html>`), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, client := NewMock(t)
			tt.mockSetup(client)

			assert.Equal(t, tt.want, dir.Store(context.Background(), "s1"))
		})
	}
}

func TestClient_User(t *testing.T) {
	dir, client := NewMock(t)
	client.EXPECT().Get(gomock.Any(), "http://directory/users/u%201", gomock.Nil()).
		Return(http.StatusOK, []byte(`{"data":{"id":"u 1","name":"Minh","email":"minh@example.com"}}`), nil)

	assert.Equal(t, &User{ID: "u 1", Name: "Minh", Email: "minh@example.com"}, dir.User(context.Background(), "u 1"))
	assert.Nil(t, dir.User(context.Background(), ""))
}
