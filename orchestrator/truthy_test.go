package orchestrator_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nx-serverless/sls-deploy/orchestrator"
)

var _ = Describe("IsTruthy", func() {
	It("treats a missing value as false", func() {
		Expect(orchestrator.IsTruthy(nil)).To(BeFalse())
	})

	DescribeTable("follows JavaScript truthiness",
		func(value interface{}, expected bool) {
			Expect(orchestrator.IsTruthy(value)).To(Equal(expected))
		},
		Entry("true", true, true),
		Entry("false", false, false),
		Entry("empty string", "", false),
		Entry("non-empty string", "yes", true),
		Entry("the string false", "false", true),
		Entry("zero", 0, false),
		Entry("one", 1, true),
		Entry("zero float", 0.0, false),
		Entry("NaN", math.NaN(), false),
		Entry("a map", map[interface{}]interface{}{}, true),
		Entry("a list", []interface{}{}, true),
	)
})
