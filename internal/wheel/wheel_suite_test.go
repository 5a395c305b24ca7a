package wheel_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wheely/internal/wheel"
)

func TestWheel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Wheel Suite")
}

var _ = Describe("Simulate", func() {
	var cfg wheel.Config

	BeforeEach(func() {
		cfg = wheel.Config{
			CupCount: 1, Radius: 1, Gravity: 9.81, Inertia: 1,
			TStart: 0, TEnd: 1, FrameCount: 3, StepsPerFrame: 5,
		}
	})

	Context("with an invalid configuration", func() {
		It("rejects a zero cup count", func() {
			cfg.CupCount = 0
			res, err := wheel.Simulate(cfg)
			Expect(res).To(BeNil())
			Expect(err).To(MatchError(wheel.ErrInvalidConfig))
		})

		It("rejects a single output frame", func() {
			cfg.FrameCount = 1
			_, err := wheel.Simulate(cfg)
			Expect(err).To(MatchError(wheel.ErrInvalidConfig))
		})

		It("performs no computation before failing", func() {
			cfg.StepsPerFrame = 0
			res, err := wheel.Simulate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(res).To(BeNil())
		})
	})

	Context("with a freely spinning wheel", func() {
		// Empty cups, no damping: theta advances at exactly Omega0.
		BeforeEach(func() {
			cfg.Omega0 = 1.0
		})

		It("samples the time window as a closed interval", func() {
			res, err := wheel.Simulate(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Times).To(HaveLen(3))
			Expect(res.Times[0]).To(Equal(0.0))
			Expect(res.Times[1]).To(BeNumerically("~", 0.5, 1e-12))
			Expect(res.Times[2]).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("advances the angle linearly", func() {
			res, err := wheel.Simulate(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Theta[0]).To(Equal(0.0))
			Expect(res.Theta[1]).To(BeNumerically("~", 0.5, 1e-9))
			Expect(res.Theta[2]).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("keeps every cup empty", func() {
			res, err := wheel.Simulate(cfg)
			Expect(err).ToNot(HaveOccurred())
			for _, m := range res.Masses {
				Expect(m).To(Equal(0.0))
			}
		})
	})

	Context("output buffer shapes", func() {
		It("sizes the buffers by frame and cup counts", func() {
			cfg.CupCount = 5
			cfg.FrameCount = 7
			res, err := wheel.Simulate(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Times).To(HaveLen(7))
			Expect(res.Theta).To(HaveLen(7))
			Expect(res.Masses).To(HaveLen(35))
			Expect(res.CupSeries(4)).To(HaveLen(7))
		})

		It("spaces frame timestamps evenly", func() {
			cfg.FrameCount = 9
			cfg.StepsPerFrame = 3
			cfg.TStart = 2
			cfg.TEnd = 6
			res, err := wheel.Simulate(cfg)
			Expect(err).ToNot(HaveOccurred())
			frameDt := 0.5
			for k, tv := range res.Times {
				Expect(tv).To(BeNumerically("~", 2+float64(k)*frameDt, 1e-10))
			}
		})

		It("records the initial state in the first frame", func() {
			cfg.Omega0 = 4.2
			res, err := wheel.Simulate(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Theta[0]).To(Equal(0.0))
			Expect(res.Mass(0, 0)).To(Equal(0.0))
		})
	})

	Context("with a cup parked under the spout", func() {
		// Zero gravity: no torque, the wheel never turns, cup 0 sits in
		// the gate and its mass approaches InflowRate/LeakRate.
		It("fills the cup toward the inflow/leak equilibrium", func() {
			cfg = wheel.Config{
				CupCount: 1, Radius: 1, Gravity: 0, Inertia: 1,
				LeakRate: 1, InflowRate: 5,
				TStart: 0, TEnd: 2, FrameCount: 41, StepsPerFrame: 10,
			}
			res, err := wheel.Simulate(cfg)
			Expect(err).ToNot(HaveOccurred())

			series := res.CupSeries(0)
			for i := 1; i < len(series); i++ {
				Expect(series[i]).To(BeNumerically(">", series[i-1]))
			}

			want := 5.0 * (1.0 - math.Exp(-2.0))
			Expect(series[len(series)-1]).To(BeNumerically("~", want, 1e-6))
		})
	})
})
