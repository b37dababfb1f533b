package packet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

// ScanFilter holds the two filter slots of a scan request.  The service does
// not currently interpret them, and both are normally empty.
type ScanFilter struct {
	First  string
	Second string
}

// EncodeScanRequest returns the ScanDevice request payload for filter
func EncodeScanRequest(filter ScanFilter) []byte {
	return []byte(filter.First + shared.FieldSeparator + filter.Second)
}

// DecodeScanResponse parses a ScanDevice response of the form
// `name,type,sync;name,type,sync`.  The index of each device is its position
// in the response.  An empty response yields no devices, and a trailing record
// separator is ignored.
func DecodeScanResponse(data []byte) ([]common.DeviceInfo, error) {
	text := strings.TrimRight(string(data), "\x00")
	if text == `` {
		return []common.DeviceInfo{}, nil
	}

	records := strings.Split(text, shared.RecordSeparator)
	if records[len(records)-1] == `` {
		records = records[:len(records)-1]
	}

	devices := make([]common.DeviceInfo, 0, len(records))
	for i, record := range records {
		fields := strings.Split(record, shared.FieldSeparator)
		if len(fields) < 3 {
			return nil, errors.Wrapf(common.ErrMalformedResponse, `device record %d %q has %d fields, want 3`, i, record, len(fields))
		}
		deviceType, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, errors.Wrapf(common.ErrMalformedResponse, `device record %d %q: bad type: %v`, i, record, err)
		}
		sync, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, errors.Wrapf(common.ErrMalformedResponse, `device record %d %q: bad sync flag: %v`, i, record, err)
		}
		devices = append(devices, common.DeviceInfo{
			Index:      i,
			Name:       fields[0],
			Type:       common.DeviceType(deviceType),
			SyncStatus: sync == 1,
		})
	}

	return devices, nil
}

// EncodeScanResponse renders devices the way the service answers a scan
func EncodeScanResponse(devices []common.DeviceInfo) []byte {
	records := make([]string, len(devices))
	for i, dev := range devices {
		records[i] = dev.Name + shared.FieldSeparator +
			strconv.Itoa(int(dev.Type)) + shared.FieldSeparator +
			syncFlag(dev.SyncStatus)
	}
	return []byte(strings.Join(records, shared.RecordSeparator))
}

func syncFlag(b bool) string {
	if b {
		return `1`
	}
	return `0`
}
