package randomuser

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseParams(t *testing.T) {
	Convey("Given raw tool arguments", t, func() {
		Convey("Valid arguments decode into a parameter object", func() {
			p, err := ParseParams(map[string]any{
				"results":       float64(2),
				"gender":        "female",
				"seed":          "abc",
				"nationalities": []any{"US", "GB"},
				"inc":           []any{"name", "email"},
			})
			So(err, ShouldBeNil)
			So(*p.Results, ShouldEqual, 2)
			So(p.Gender, ShouldEqual, "female")
			So(p.Seed, ShouldEqual, "abc")
			So(p.Nationalities, ShouldResemble, []string{"US", "GB"})
			So(p.Inc, ShouldResemble, []string{"name", "email"})
		})

		Convey("No arguments at all is a valid empty object", func() {
			p, err := ParseParams(nil)
			So(err, ShouldBeNil)
			So(BuildQuery(p), ShouldEqual, "")
		})

		Convey("Unknown argument keys are dropped, never forwarded", func() {
			p, err := ParseParams(map[string]any{"verbose": true, "limit": float64(9)})
			So(err, ShouldBeNil)
			So(BuildQuery(p), ShouldEqual, "")
		})

		Convey("An invalid nationality code is rejected", func() {
			_, err := ParseParams(map[string]any{"nationalities": []any{"ZZ"}})
			So(err, ShouldNotBeNil)
		})

		Convey("A gender outside the enum is rejected", func() {
			_, err := ParseParams(map[string]any{"gender": "other"})
			So(err, ShouldNotBeNil)
		})

		Convey("Zero or negative results are rejected", func() {
			_, err := ParseParams(map[string]any{"results": float64(0)})
			So(err, ShouldNotBeNil)

			_, err = ParseParams(map[string]any{"results": float64(-1)})
			So(err, ShouldNotBeNil)
		})

		Convey("A wrong-typed field is rejected", func() {
			_, err := ParseParams(map[string]any{"results": "two"})
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown inc field name is rejected", func() {
			_, err := ParseParams(map[string]any{"inc": []any{"shoesize"}})
			So(err, ShouldNotBeNil)
		})

		Convey("A password charset entry outside the enum is rejected", func() {
			_, err := ParseParams(map[string]any{
				"password": map[string]any{"charset": []any{"emoji"}},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("A pagination page below 1 is rejected", func() {
			_, err := ParseParams(map[string]any{
				"pagination": map[string]any{"page": float64(0)},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("An empty nationalities collection is accepted and emits no key", func() {
			p, err := ParseParams(map[string]any{"nationalities": []any{}})
			So(err, ShouldBeNil)
			So(BuildQuery(p), ShouldEqual, "")
		})

		Convey("A password with only a bound is accepted as the degenerate form", func() {
			p, err := ParseParams(map[string]any{
				"password": map[string]any{"min": float64(8)},
			})
			So(err, ShouldBeNil)
			So(BuildQuery(p), ShouldEqual, "password=%22,8%22")
		})

		Convey("inc and exc together are accepted as-is", func() {
			p, err := ParseParams(map[string]any{
				"inc": []any{"name"},
				"exc": []any{"login"},
			})
			So(err, ShouldBeNil)
			So(BuildQuery(p), ShouldEqual, "inc=name&exc=login")
		})
	})
}
