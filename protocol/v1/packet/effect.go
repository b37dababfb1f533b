package packet

import (
	"bytes"
	"fmt"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

// EffectData is the fixed layout record written to the ApplyEffect channel.
// Fields are packed without padding, in this order, little-endian.
type EffectData struct {
	Speed     int32                    `struc:"int32,little"`
	Mode      int32                    `struc:"int32,little"`
	CPULow    int32                    `struc:"int32,little"`
	CPUHigh   int32                    `struc:"int32,little"`
	MusicMode int32                    `struc:"int32,little"`
	H         float64                  `struc:"float64,little"`
	S         float64                  `struc:"float64,little"`
	V         float64                  `struc:"float64,little"`
	MilliSecs float64                  `struc:"float64,little"`
	SyncStr   [shared.SyncStrSize]byte `struc:"[256]byte"`
}

// NewEffectData builds the record for effect, embedding syncStr.  syncStr is
// truncated so that the field always keeps a terminating NUL.
func NewEffectData(effect common.Effect, syncStr string) *EffectData {
	d := &EffectData{
		Speed:     int32(effect.Speed),
		Mode:      int32(effect.Mode),
		CPULow:    int32(effect.CPULow),
		CPUHigh:   int32(effect.CPUHigh),
		MusicMode: int32(effect.MusicMode),
		H:         effect.Hue,
		S:         effect.Saturation,
		V:         effect.Value,
	}
	d.SetSyncStr(syncStr)
	return d
}

// SetSyncStr replaces the sync summary, NUL padding the remainder
func (d *EffectData) SetSyncStr(s string) {
	d.SyncStr = [shared.SyncStrSize]byte{}
	copy(d.SyncStr[:shared.SyncStrSize-1], s)
}

// SyncString returns the sync summary up to the first NUL
func (d *EffectData) SyncString() string {
	s := d.SyncStr[:]
	if i := bytes.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return string(s)
}

// Effect returns the effect parameters carried by the record
func (d *EffectData) Effect() common.Effect {
	return common.Effect{
		Speed:      int(d.Speed),
		Mode:       common.EffectMode(d.Mode),
		CPULow:     int(d.CPULow),
		CPUHigh:    int(d.CPUHigh),
		MusicMode:  int(d.MusicMode),
		Hue:        d.H,
		Saturation: d.S,
		Value:      d.V,
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.  The result is always
// shared.EffectDataSize bytes long.
func (d *EffectData) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(shared.EffectDataSize)
	if err := struc.Pack(buf, d); err != nil {
		return nil, errors.Wrap(err, `packing effect data`)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (d *EffectData) UnmarshalBinary(data []byte) error {
	if len(data) != shared.EffectDataSize {
		return errors.Wrapf(common.ErrMalformedResponse, `effect data is %d bytes, want %d`, len(data), shared.EffectDataSize)
	}
	if err := struc.Unpack(bytes.NewReader(data), d); err != nil {
		return errors.Wrap(err, `unpacking effect data`)
	}
	return nil
}

// String renders the record for logs
func (d *EffectData) String() string {
	return fmt.Sprintf(`%v speed=%d cpu=%d-%d music=%d hsv=(%g,%g,%g) sync=%q`,
		common.EffectMode(d.Mode), d.Speed, d.CPULow, d.CPUHigh, d.MusicMode,
		d.H, d.S, d.V, d.SyncString())
}
