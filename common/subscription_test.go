package common_test

import (
	"time"

	. "github.com/pdf/gomaxsun/common"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/pdf/gomaxsun/mocks"
)

var _ = Describe("Subscription", func() {
	var (
		target *mocks.SubscriptionTarget
		sub    *Subscription
	)

	BeforeEach(func() {
		target = new(mocks.SubscriptionTarget)
		target.On(`CloseSubscription`, mock.Anything).Return(nil)
		sub = NewSubscription(target)
	})

	It("should have a unique ID", func() {
		Expect(sub.ID()).NotTo(BeEmpty())
		Expect(NewSubscription(target).ID()).NotTo(Equal(sub.ID()))
	})

	It("should deliver written events", func() {
		event := EventEffectApplied{Effect: DefaultEffect()}
		Expect(sub.Write(event)).To(Succeed())
		Expect(sub.Events()).To(Receive(Equal(event)))
	})

	It("should notify the target when closed", func() {
		Expect(sub.Close()).To(Succeed())
		target.AssertCalled(GinkgoT(), `CloseSubscription`, sub)
		Expect(sub.Events()).To(BeClosed())
	})

	It("should return ErrClosed when closed twice", func() {
		Expect(sub.Close()).To(Succeed())
		Expect(sub.Close()).To(MatchError(ErrClosed))
		target.AssertNumberOfCalls(GinkgoT(), `CloseSubscription`, 1)
	})

	It("should return ErrClosed when writing to a closed subscription", func() {
		Expect(sub.Close()).To(Succeed())
		Expect(sub.Write(EventSyncStatusUpdated{})).To(MatchError(ErrClosed))
	})

	It("should release a blocked writer on close", func() {
		for i := 0; i < 16; i++ {
			Expect(sub.Write(EventSyncStatusUpdated{})).To(Succeed())
		}
		result := make(chan error, 1)
		go func() {
			result <- sub.Write(EventSyncStatusUpdated{})
		}()
		Consistently(result, 50*time.Millisecond).ShouldNot(Receive())
		Expect(sub.Close()).To(Succeed())
		Eventually(result).Should(Receive(MatchError(ErrClosed)))
	})
})
