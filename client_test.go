package gomaxsun_test

import (
	"context"
	"errors"
	"time"

	. "github.com/pdf/gomaxsun"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/format"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/mocks"
	"github.com/stretchr/testify/mock"
)

func init() {
	format.UseStringerRepresentation = false
}

var _ = Describe("Gomaxsun", func() {
	var (
		client             *Client
		clientSubscription *common.Subscription
		timeout            = 200 * time.Millisecond

		mockProtocol *mocks.Protocol
		mockService  *mocks.ServiceController

		devices = []common.DeviceInfo{
			{Index: 0, Name: `B650M`, Type: common.DeviceMotherBoard, SyncStatus: true},
			{Index: 1, Name: `DDR5`, Type: common.DeviceDram, SyncStatus: false},
		}
		testErr = errors.New(`boom`)
	)

	It("should return a client from NewClient", func() {
		mockProtocol = new(mocks.Protocol)
		client = NewClient(mockProtocol)
		Expect(client).To(BeAssignableToTypeOf(new(Client)))
		Expect(client.GetTimeout()).To(Equal(common.DefaultTimeout))
		Expect(client.GetServiceTimeout()).To(Equal(common.DefaultServiceTimeout))
	})

	It("should default to protocol V1 when given no protocol", func() {
		client = NewClient(nil)
		Expect(client).NotTo(BeNil())
		Expect(client.Close()).To(Succeed())
	})

	Describe("Client", func() {
		BeforeEach(func() {
			mockProtocol = new(mocks.Protocol)
			mockService = new(mocks.ServiceController)
			client = NewClient(mockProtocol)
			client.SetTimeout(timeout)
			client.SetServiceTimeout(timeout)
			client.SetServicePollInterval(10 * time.Millisecond)
			clientSubscription, _ = client.NewSubscription()
		})

		AfterEach(func() {
			mockProtocol.On(`Close`).Return(nil)
			_ = client.Close()
		})

		It("should update the timeout", func() {
			t := 5 * time.Second
			client.SetTimeout(t)
			Expect(client.GetTimeout()).To(Equal(t))
		})

		It("should update the service timeout", func() {
			t := 10 * time.Second
			client.SetServiceTimeout(t)
			Expect(client.GetServiceTimeout()).To(Equal(t))
		})

		Context("scanning devices", func() {
			It("should return the devices from the protocol", func() {
				mockProtocol.On(`ScanDevices`, mock.Anything).Return(devices, nil).Once()
				Expect(client.ScanDevices()).To(Equal(devices))
			})

			It("should publish an EventDevicesScanned", func() {
				mockProtocol.On(`ScanDevices`, mock.Anything).Return(devices, nil).Once()
				_, err := client.ScanDevices()
				Expect(err).NotTo(HaveOccurred())
				Eventually(clientSubscription.Events()).Should(Receive(Equal(common.EventDevicesScanned{Devices: devices})))
			})

			It("should return protocol errors", func() {
				mockProtocol.On(`ScanDevices`, mock.Anything).Return(nil, common.ErrConnectFailed).Once()
				_, err := client.ScanDevices()
				Expect(err).To(MatchError(common.ErrConnectFailed))
				Consistently(clientSubscription.Events()).ShouldNot(Receive())
			})

			It("should bound the exchange by the client timeout", func() {
				var deadline time.Time
				mockProtocol.On(`ScanDevices`, mock.Anything).Run(func(args mock.Arguments) {
					deadline, _ = args.Get(0).(context.Context).Deadline()
				}).Return(devices, nil).Once()
				start := time.Now()
				_, _ = client.ScanDevices()
				Expect(deadline).To(BeTemporally(`~`, start.Add(timeout), 50*time.Millisecond))
			})

			It("should not set a deadline when the timeout is zero", func() {
				client.SetTimeout(0)
				hasDeadline := true
				mockProtocol.On(`ScanDevices`, mock.Anything).Run(func(args mock.Arguments) {
					_, hasDeadline = args.Get(0).(context.Context).Deadline()
				}).Return(devices, nil).Once()
				_, _ = client.ScanDevices()
				Expect(hasDeadline).To(BeFalse())
			})
		})

		Context("applying effects", func() {
			It("should send ApplyEffect to the protocol", func() {
				effect := common.DefaultEffect()
				mockProtocol.On(`ApplyEffect`, mock.Anything, effect).Return(nil).Once()
				Expect(client.ApplyEffect(effect)).To(Succeed())
				Eventually(clientSubscription.Events()).Should(Receive(Equal(common.EventEffectApplied{Effect: effect})))
			})

			It("should send the sleep preset for ApplyEffectForSleep", func() {
				sleep := common.Effect{
					Speed:   0,
					Mode:    common.EffectSingle,
					CPULow:  30,
					CPUHigh: 70,
				}
				mockProtocol.On(`ApplyEffect`, mock.Anything, sleep).Return(nil).Once()
				Expect(client.ApplyEffectForSleep()).To(Succeed())
				mockProtocol.AssertExpectations(GinkgoT())
			})

			It("should return protocol errors", func() {
				mockProtocol.On(`ApplyEffect`, mock.Anything, mock.Anything).Return(testErr).Once()
				Expect(client.ApplyEffect(common.DefaultEffect())).To(MatchError(testErr))
			})
		})

		Context("sync status", func() {
			It("should return the sync status list", func() {
				status := []bool{true, false, true}
				mockProtocol.On(`GetSyncStatusList`, mock.Anything).Return(status, nil).Once()
				Expect(client.GetSyncStatusList()).To(Equal(status))
				Eventually(clientSubscription.Events()).Should(Receive(Equal(common.EventSyncStatusUpdated{Status: status})))
			})

			It("should report success when setting the sync status", func() {
				status := []bool{false, true}
				mockProtocol.On(`SetSyncStatus`, mock.Anything, status).Return(nil).Once()
				ok, err := client.SetSyncStatus(status)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
			})

			It("should publish a copy of the status that was set", func() {
				status := []bool{true, false}
				mockProtocol.On(`SetSyncStatus`, mock.Anything, mock.Anything).Return(nil).Once()
				_, err := client.SetSyncStatus(status)
				Expect(err).NotTo(HaveOccurred())
				status[0] = false

				var evt interface{}
				Eventually(clientSubscription.Events()).Should(Receive(&evt))
				Expect(evt).To(Equal(common.EventSyncStatusUpdated{Status: []bool{true, false}}))
			})

			It("should publish a copy of the status that was read", func() {
				status := []bool{false, true}
				mockProtocol.On(`GetSyncStatusList`, mock.Anything).Return(status, nil).Once()
				got, err := client.GetSyncStatusList()
				Expect(err).NotTo(HaveOccurred())
				got[1] = false

				var evt interface{}
				Eventually(clientSubscription.Events()).Should(Receive(&evt))
				Expect(evt).To(Equal(common.EventSyncStatusUpdated{Status: []bool{false, true}}))
			})

			It("should report failure when setting the sync status fails", func() {
				mockProtocol.On(`SetSyncStatus`, mock.Anything, mock.Anything).Return(common.ErrTimeout).Once()
				ok, err := client.SetSyncStatus([]bool{true})
				Expect(err).To(MatchError(common.ErrTimeout))
				Expect(ok).To(BeFalse())
			})
		})

		Context("checking the service", func() {
			It("should not start a running service", func() {
				mockService.On(`Status`).Return(common.ServiceRunning, nil)
				Expect(client.CheckService(mockService)).To(Succeed())
				mockService.AssertNotCalled(GinkgoT(), `Start`)
			})

			It("should start a stopped service and wait for it", func() {
				mockService.On(`Status`).Return(common.ServiceStopped, nil).Once()
				mockService.On(`Start`).Return(nil).Once()
				mockService.On(`Status`).Return(common.ServiceRunning, nil)
				Expect(client.CheckService(mockService)).To(Succeed())
				mockService.AssertNumberOfCalls(GinkgoT(), `Start`, 1)
			})

			It("should return ErrServiceUnavailable when the service never starts", func() {
				mockService.On(`Status`).Return(common.ServiceStartPending, nil)
				Expect(client.CheckService(mockService)).To(MatchError(common.ErrServiceUnavailable))
			})
		})

		Context("subscriptions", func() {
			It("should close subscriptions", func() {
				sub, err := client.NewSubscription()
				Expect(err).NotTo(HaveOccurred())
				Expect(sub.Close()).To(Succeed())
				Expect(client.CloseSubscription(sub)).To(MatchError(common.ErrNotFound))
			})

			It("should close subscriptions when the client closes", func() {
				mockProtocol.On(`Close`).Return(nil).Once()
				Expect(client.Close()).To(Succeed())
				Eventually(clientSubscription.Events()).Should(BeClosed())
			})
		})

		Context("when closed", func() {
			BeforeEach(func() {
				mockProtocol.On(`Close`).Return(nil).Once()
				Expect(client.Close()).To(Succeed())
			})

			It("should return ErrClosed from Close", func() {
				Expect(client.Close()).To(MatchError(common.ErrClosed))
			})

			It("should return ErrClosed from operations", func() {
				_, err := client.ScanDevices()
				Expect(err).To(MatchError(common.ErrClosed))
				Expect(client.ApplyEffect(common.DefaultEffect())).To(MatchError(common.ErrClosed))
				_, err = client.GetSyncStatusList()
				Expect(err).To(MatchError(common.ErrClosed))
				_, err = client.SetSyncStatus([]bool{true})
				Expect(err).To(MatchError(common.ErrClosed))
				Expect(client.CheckService(mockService)).To(MatchError(common.ErrClosed))
				_, err = client.NewSubscription()
				Expect(err).To(MatchError(common.ErrClosed))
			})
		})
	})
})
