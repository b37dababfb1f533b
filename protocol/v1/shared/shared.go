// Package shared holds the constants of the MaxsunSync pipe protocol that are
// used by more than one of the protocol packages.
package shared

import "fmt"

// Direction describes how a channel is opened
type Direction int

const (
	// InOut channels carry a request and a response
	InOut Direction = iota
	// Out channels are write-only, no response is sent
	Out
)

func (d Direction) String() string {
	switch d {
	case InOut:
		return `in/out`
	case Out:
		return `out`
	}
	return fmt.Sprintf(`Direction(%d)`, int(d))
}

const (
	// ChannelScanDevice lists the devices known to the service
	ChannelScanDevice = `ScanDevice`
	// ChannelApplyEffect accepts an effect record
	ChannelApplyEffect = `ApplyEffect`
	// ChannelSyncStatus reads or replaces the per-device sync flags, depending
	// on the request payload
	ChannelSyncStatus = `SyncStatus`

	// PipePrefix is prepended to channel names to form a local named pipe
	// path
	PipePrefix = `\\.\pipe\`

	// ResponseBufferSize is the size of the single read that receives a
	// response
	ResponseBufferSize = 4096

	// FieldSeparator separates fields inside a scan record
	FieldSeparator = `,`
	// RecordSeparator separates scan records, and sync string entries
	RecordSeparator = `;`

	// SyncStatusQuery is the request that asks for the sync flags instead of
	// setting them
	SyncStatusQuery = `-1`

	// SyncStrSize is the fixed width of the sync summary inside an effect
	// record, including the terminating NUL
	SyncStrSize = 256
	// EffectDataSize is the size of an encoded effect record: five int32,
	// four float64 and the sync summary
	EffectDataSize = 5*4 + 4*8 + SyncStrSize
)
