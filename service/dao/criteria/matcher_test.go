package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ossim/service/dao"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		name       string
		value      string
		parameters []*dao.Parameter
		expect     bool
	}{
		{name: "no parameters", value: "a", expect: true},
		{name: "single match", value: "a", parameters: []*dao.Parameter{dao.NewParameter(dao.ParamName, "a")}, expect: true},
		{name: "single mismatch", value: "b", parameters: []*dao.Parameter{dao.NewParameter(dao.ParamName, "a")}, expect: false},
		{name: "list match", value: "b", parameters: []*dao.Parameter{dao.NewParameter(dao.ParamName, "a", "b")}, expect: true},
		{name: "other parameter", value: "b", parameters: []*dao.Parameter{dao.NewParameter(dao.ParamStatus, "a")}, expect: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Match(dao.ParamName, tc.value, tc.parameters))
		})
	}
}
