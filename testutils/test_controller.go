package testutils

import (
	"github.com/itbasis/go-clock"
)

// TestController bundles the fakes a controller needs in tests.
type TestController struct {
	Clock    clock.Clock
	fakeCFBD *FakeCFBDServer
}

func (c *TestController) Close() {
	c.fakeCFBD.Close()
}

func (c *TestController) CFBDURL() string {
	return c.fakeCFBD.URL()
}

// CFBDRequests returns how many requests the fake CFBD server has handled.
func (c *TestController) CFBDRequests() int {
	return c.fakeCFBD.Requests()
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:    db.Clock,
		fakeCFBD: NewFakeCFBDServer(),
	}
}
