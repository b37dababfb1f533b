package protocol_test

import (
	"context"
	"runtime"
	"time"

	. "github.com/pdf/gomaxsun/protocol"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol/v1/packet"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

var _ = Describe("V1", func() {
	var (
		stub *stubService
		p    *V1
		ctx  context.Context

		cancel context.CancelFunc
	)

	BeforeEach(func() {
		stub = &stubService{scanResponse: []byte(`RAM,3,1;CPU_FAN,5,0`)}
		p = &V1{Dialer: stub.dialer()}
		ctx, cancel = context.WithTimeout(context.Background(), time.Second)
	})

	AfterEach(func() {
		cancel()
		stub.wait()
	})

	Context("scanning devices", func() {
		It("should decode the devices", func() {
			devices, err := p.ScanDevices(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(devices).To(Equal([]common.DeviceInfo{
				{Index: 0, Name: `RAM`, Type: common.DeviceDram, SyncStatus: true},
				{Index: 1, Name: `CPU_FAN`, Type: common.DeviceWaterCooler, SyncStatus: false},
			}))
		})

		It("should send the scan filter on the ScanDevice channel", func() {
			p.ScanFilter = packet.ScanFilter{First: `a`}
			_, err := p.ScanDevices(ctx)
			Expect(err).NotTo(HaveOccurred())
			reqs := stub.received()
			Expect(reqs).To(HaveLen(1))
			Expect(reqs[0].name).To(Equal(shared.ChannelScanDevice))
			Expect(reqs[0].dir).To(Equal(shared.InOut))
			Expect(string(reqs[0].payload)).To(Equal(`a,`))
		})

		It("should return ErrMalformedResponse for a bad response", func() {
			stub.scanResponse = []byte(`RAM;CPU_FAN`)
			_, err := p.ScanDevices(ctx)
			Expect(err).To(MatchError(common.ErrMalformedResponse))
		})

		It("should return ErrTimeout when the service does not answer", func() {
			stub.silent = true
			short, done := context.WithTimeout(ctx, 50*time.Millisecond)
			defer done()
			_, err := p.ScanDevices(short)
			Expect(err).To(MatchError(common.ErrTimeout))
		})

		It("should return ErrConnectFailed when the channel cannot be opened", func() {
			stub.dialErr = errRefused
			_, err := p.ScanDevices(ctx)
			Expect(err).To(MatchError(common.ErrConnectFailed))
		})
	})

	Context("applying effects", func() {
		It("should scan, then send a packed record", func() {
			effect := common.DefaultEffect()
			Expect(p.ApplyEffect(ctx, effect)).To(Succeed())

			reqs := stub.received()
			Expect(reqs).To(HaveLen(2))
			Expect(reqs[0].name).To(Equal(shared.ChannelScanDevice))
			Expect(reqs[1].name).To(Equal(shared.ChannelApplyEffect))
			Expect(reqs[1].dir).To(Equal(shared.Out))
			Expect(reqs[1].payload).To(HaveLen(shared.EffectDataSize))

			data := new(packet.EffectData)
			Expect(data.UnmarshalBinary(reqs[1].payload)).To(Succeed())
			Expect(data.Effect()).To(Equal(effect))
			Expect(data.SyncString()).To(Equal(`3,1;5,0`))
		})

		It("should send the sleep preset", func() {
			Expect(p.ApplyEffect(ctx, common.SleepEffect())).To(Succeed())

			reqs := stub.received()
			data := new(packet.EffectData)
			Expect(data.UnmarshalBinary(reqs[1].payload)).To(Succeed())
			Expect(data.Speed).To(BeEquivalentTo(0))
			Expect(data.Mode).To(BeEquivalentTo(common.EffectSingle))
			Expect(data.CPULow).To(BeEquivalentTo(30))
			Expect(data.CPUHigh).To(BeEquivalentTo(70))
			Expect(data.MusicMode).To(BeEquivalentTo(0))
			Expect([]float64{data.H, data.S, data.V}).To(Equal([]float64{0, 0, 0}))
		})

		It("should not send a record when the scan fails", func() {
			stub.scanResponse = []byte(`RAM`)
			Expect(p.ApplyEffect(ctx, common.DefaultEffect())).To(MatchError(common.ErrMalformedResponse))
			Expect(stub.received()).To(HaveLen(1))
		})
	})

	Context("sync status", func() {
		It("should read back the flags that were set", func() {
			for _, status := range [][]bool{
				{true},
				{false, true},
				{true, false, true, true, false},
			} {
				Expect(p.SetSyncStatus(ctx, status)).To(Succeed())
				Expect(p.GetSyncStatusList(ctx)).To(Equal(status))
			}
		})

		It("should query with -1 and set with a bit string", func() {
			Expect(p.SetSyncStatus(ctx, []bool{true, false})).To(Succeed())
			_, err := p.GetSyncStatusList(ctx)
			Expect(err).NotTo(HaveOccurred())

			reqs := stub.received()
			Expect(reqs).To(HaveLen(2))
			Expect(string(reqs[0].payload)).To(Equal(`10`))
			Expect(string(reqs[1].payload)).To(Equal(`-1`))
			for _, r := range reqs {
				Expect(r.name).To(Equal(shared.ChannelSyncStatus))
			}
		})
	})

	Context("when closed", func() {
		It("should return ErrClosed", func() {
			Expect(p.Close()).To(Succeed())
			Expect(p.Close()).To(MatchError(common.ErrClosed))
			_, err := p.ScanDevices(ctx)
			Expect(err).To(MatchError(common.ErrClosed))
			Expect(p.ApplyEffect(ctx, common.DefaultEffect())).To(MatchError(common.ErrClosed))
			_, err = p.GetSyncStatusList(ctx)
			Expect(err).To(MatchError(common.ErrClosed))
			Expect(p.SetSyncStatus(ctx, nil)).To(MatchError(common.ErrClosed))
		})
	})

	It("should default to the platform dialer", func() {
		if runtime.GOOS == `windows` {
			Skip(`dials real named pipes on windows`)
		}
		_, err := (&V1{}).ScanDevices(ctx)
		Expect(err).To(MatchError(common.ErrUnsupportedPlatform))
	})
})
