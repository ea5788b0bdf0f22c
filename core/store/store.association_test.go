package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/client"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/models"
)

func newTestAssociationStore(t *testing.T, api *fakeRequester, notifier *fakeNotifier) *AssociationStore {
	t.Helper()

	s, err := NewAssociationStore(AssociationConfig{
		Name: "account_contacts",
		Endpoints: client.AssociationEndpointSet{
			Get:     client.NewEndpoint("POST", "/crm/associations/get"),
			Save:    client.NewEndpoint("POST", "/crm/associations/save"),
			Delete:  client.NewEndpoint("POST", "/crm/associations/delete"),
			Restore: client.NewEndpoint("POST", "/crm/associations/restore"),
		},
	}, Deps{API: api, Notifier: notifier})
	require.NoError(t, err)
	return s
}

func testKey() models.AssociationKey {
	return models.AssociationKey{
		SourceModule:   "accounts",
		SourceModuleID: "3",
		TargetModule:   "contacts",
	}
}

func TestAssociationStore(t *testing.T) {
	t.Run("Fetch suy ra counter và selected ids từ kết quả", func(t *testing.T) {
		api := &fakeRequester{}
		api.handler = func(call apiCall) (*client.Response, error) {
			return okList(
				map[string]any{"id": "11", "name": "An"},
				map[string]any{"id": "12", "name": "Bình"},
			), nil
		}
		s := newTestAssociationStore(t, api, &fakeNotifier{})

		s.FetchRecords(context.Background(), testKey())

		assert.Equal(t, 2, s.Counter())
		assert.Equal(t, []string{"11", "12"}, s.SelectedIds())

		// Key được gửi nguyên trong payload
		calls := api.CallsTo("/crm/associations/get")
		require.Len(t, calls, 1)
		assert.Equal(t, "accounts", calls[0].Payload["source_module"])
		assert.Equal(t, "3", calls[0].Payload["source_module_id"])
		assert.Equal(t, "contacts", calls[0].Payload["target_module"])
	})

	t.Run("Key không hợp lệ bị từ chối, không có network call", func(t *testing.T) {
		api := &fakeRequester{}
		s := newTestAssociationStore(t, api, &fakeNotifier{})

		s.FetchRecords(context.Background(), models.AssociationKey{})

		assert.Empty(t, api.Calls())
		assert.Error(t, s.LastError())
	})

	t.Run("Save thành công thì refetch cùng key", func(t *testing.T) {
		api := &fakeRequester{}
		api.handler = func(call apiCall) (*client.Response, error) {
			if call.Path() == "/crm/associations/save" {
				return &client.Response{Status: 200}, nil
			}
			return okList(map[string]any{"id": "11"}), nil
		}
		s := newTestAssociationStore(t, api, &fakeNotifier{})

		s.SaveRecord(context.Background(), testKey(), "11")

		saveCalls := api.CallsTo("/crm/associations/save")
		require.Len(t, saveCalls, 1)
		assert.Equal(t, "11", saveCalls[0].Payload["target_module_id"])
		// Refetch sau save
		assert.Len(t, api.CallsTo("/crm/associations/get"), 1)
		assert.Equal(t, []string{"11"}, s.SelectedIds())
	})

	t.Run("Delete gỡ record cục bộ ngay (optimistic)", func(t *testing.T) {
		api := &fakeRequester{}
		api.handler = func(call apiCall) (*client.Response, error) {
			return okList(
				map[string]any{"id": "11"},
				map[string]any{"id": "12"},
			), nil
		}
		s := newTestAssociationStore(t, api, &fakeNotifier{})
		s.FetchRecords(context.Background(), testKey())

		s.DeleteRecord(context.Background(), testKey(), "11")

		assert.Equal(t, []string{"12"}, s.SelectedIds())
		assert.Equal(t, 1, s.Counter())
		require.Len(t, api.CallsTo("/crm/associations/delete"), 1)
	})

	t.Run("Delete thất bại thì refetch để đồng bộ lại", func(t *testing.T) {
		api := &fakeRequester{}
		api.handler = func(call apiCall) (*client.Response, error) {
			if call.Path() == "/crm/associations/delete" {
				return &client.Response{Status: 500}, nil
			}
			return okList(map[string]any{"id": "11"}), nil
		}
		notifier := &fakeNotifier{}
		s := newTestAssociationStore(t, api, notifier)
		s.FetchRecords(context.Background(), testKey())

		s.DeleteRecord(context.Background(), testKey(), "11")

		assert.NotEmpty(t, notifier.Errors())
		// 1 fetch ban đầu + 1 refetch sau thất bại
		assert.Len(t, api.CallsTo("/crm/associations/get"), 2)
		// Record quay lại sau refetch
		assert.Equal(t, []string{"11"}, s.SelectedIds())
	})

	t.Run("Restore chỉ gọi server", func(t *testing.T) {
		api := &fakeRequester{}
		s := newTestAssociationStore(t, api, &fakeNotifier{})

		s.RestoreRecord(context.Background(), testKey(), "11")

		restoreCalls := api.CallsTo("/crm/associations/restore")
		require.Len(t, restoreCalls, 1)
		assert.Equal(t, "11", restoreCalls[0].Payload["target_module_id"])
	})
}
