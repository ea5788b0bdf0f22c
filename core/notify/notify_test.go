package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmCenter(t *testing.T) {
	t.Run("Callback chỉ chạy khi user xác nhận", func(t *testing.T) {
		c := NewConfirmCenter()
		ran := false
		c.Open("Xóa bản ghi #1?", func() { ran = true })

		pending := c.Pending()
		require.Len(t, pending, 1)

		var id int64
		for pendingID := range pending {
			id = pendingID
		}

		require.True(t, c.Resolve(id, true))
		assert.True(t, ran)
		assert.Empty(t, c.Pending())
	})

	t.Run("Từ chối chỉ xóa yêu cầu, không có side-effect", func(t *testing.T) {
		c := NewConfirmCenter()
		ran := false
		c.Open("Xóa bản ghi #2?", func() { ran = true })

		var id int64
		for pendingID := range c.Pending() {
			id = pendingID
		}

		require.True(t, c.Resolve(id, false))
		assert.False(t, ran)
		assert.Empty(t, c.Pending())
	})

	t.Run("Resolve id không tồn tại trả về false", func(t *testing.T) {
		c := NewConfirmCenter()
		assert.False(t, c.Resolve(999, true))
	})

	t.Run("Resolve hai lần không chạy callback lần hai", func(t *testing.T) {
		c := NewConfirmCenter()
		count := 0
		c.Open("Xóa?", func() { count++ })

		var id int64
		for pendingID := range c.Pending() {
			id = pendingID
		}

		require.True(t, c.Resolve(id, true))
		assert.False(t, c.Resolve(id, true))
		assert.Equal(t, 1, count)
	})
}
