package packet

import (
	"strconv"
	"strings"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

// EncodeSyncString builds the per-device sync summary embedded in an effect
// record: `type,sync` for each device, joined by semicolons.
func EncodeSyncString(devices []common.DeviceInfo) string {
	entries := make([]string, len(devices))
	for i, dev := range devices {
		entries[i] = strconv.Itoa(int(dev.Type)) + shared.FieldSeparator + syncFlag(dev.SyncStatus)
	}
	return strings.Join(entries, shared.RecordSeparator)
}

// EncodeSyncStatusQuery returns the SyncStatus request that reads the flags
func EncodeSyncStatusQuery() []byte {
	return []byte(shared.SyncStatusQuery)
}

// DecodeSyncStatus reads one flag per '0' or '1' character in data.  All other
// characters are skipped.
func DecodeSyncStatus(data []byte) []bool {
	status := make([]bool, 0, len(data))
	for _, b := range data {
		switch b {
		case '1':
			status = append(status, true)
		case '0':
			status = append(status, false)
		}
	}
	return status
}

// EncodeSyncStatus returns the SyncStatus request that replaces the flags, one
// character per device in scan order
func EncodeSyncStatus(status []bool) []byte {
	buf := make([]byte, len(status))
	for i, s := range status {
		if s {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return buf
}
