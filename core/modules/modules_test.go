package modules

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/api/client"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/global"
	"github.com/iehsan77/crmv2-admin-client-api-sub001/core/store"
)

func TestMain(m *testing.M) {
	global.InitValidator()
	os.Exit(m.Run())
}

// recordingRequester ghi lại payload của các request để kiểm tra wiring
type recordingRequester struct {
	mu       sync.Mutex
	payloads []map[string]any
}

func (r *recordingRequester) Request(ctx context.Context, endpoint client.Endpoint, payload map[string]any, args ...any) (*client.Response, error) {
	r.mu.Lock()
	r.payloads = append(r.payloads, payload)
	r.mu.Unlock()
	return &client.Response{Status: 200, Data: []any{}}, nil
}

func (r *recordingRequester) last() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.payloads) == 0 {
		return nil
	}
	return r.payloads[len(r.payloads)-1]
}

func TestRegisterAll(t *testing.T) {
	api := &recordingRequester{}
	require.NoError(t, RegisterAll(store.Deps{API: api, Confirmer: Confirmations}))

	t.Run("Đủ 8 module store", func(t *testing.T) {
		assert.Equal(t, 8, Stores.Count())
		for _, name := range []string{"leads", "contacts", "accounts", "deals", "tasks", "calls", "meetings", "rental_bookings"} {
			_, ok := Stores.Get(name)
			assert.True(t, ok, "thiếu module %s", name)
		}
	})

	t.Run("Đủ association store", func(t *testing.T) {
		assert.Equal(t, 2, Associations.Count())
		_, ok := Associations.Get("account_contacts")
		assert.True(t, ok)
	})

	t.Run("Mọi module có tab mặc định được bảo vệ", func(t *testing.T) {
		for _, name := range Stores.Names() {
			s, _ := Stores.Get(name)
			assert.Equal(t, store.DefaultViewTab, s.ViewTabs.ActiveTab(), "module %s", name)
		}
	})

	t.Run("Module kanban có endpoint update-status", func(t *testing.T) {
		for _, name := range []string{"leads", "deals", "tasks", "rental_bookings"} {
			s, _ := Stores.Get(name)
			assert.False(t, s.Endpoints().UpdateStatus.IsZero(), "module %s", name)
			assert.False(t, s.Endpoints().GetByStatus.IsZero(), "module %s", name)
		}
	})

	t.Run("Booking gắn vehicle_id của ngữ cảnh vào payload fetch", func(t *testing.T) {
		s, ok := Stores.Get("rental_bookings")
		require.True(t, ok)

		SetBookingVehicleID("88")
		s.FetchRecords(context.Background())

		payload := api.last()
		require.NotNil(t, payload)
		assert.Equal(t, "88", payload["vehicle_id"])

		// Đổi ngữ cảnh: giá trị mới được đọc tại thời điểm fetch
		SetBookingVehicleID("99")
		s.FetchRecords(context.Background())
		assert.Equal(t, "99", api.last()["vehicle_id"])
	})

	t.Run("Endpoint chi tiết nhúng id vào path", func(t *testing.T) {
		s, _ := Stores.Get("leads")
		assert.Equal(t, "/crm/leads/get/7", s.Endpoints().GetDetails.Resolve("7"))
		assert.Equal(t, "/crm/leads/favorite/7/1", s.Endpoints().Favorite.Resolve("7", 1))
	})
}
