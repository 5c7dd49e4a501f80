package pathutils_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/gitfacade/internal/utils/path"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	homeProvider := func() (string, error) { return "/home/builder", nil }
	failingProvider := func() (string, error) { return "", errors.New("no home") }

	testCases := []struct {
		name         string
		provider     pathutils.HomeDirectoryProvider
		candidate    string
		expectedPath string
	}{
		{name: "bare_tilde", provider: homeProvider, candidate: "~", expectedPath: "/home/builder"},
		{name: "tilde_prefix", provider: homeProvider, candidate: "~/bin/hub", expectedPath: "/home/builder/bin/hub"},
		{name: "other_user_untouched", provider: homeProvider, candidate: "~ops/bin/git", expectedPath: "~ops/bin/git"},
		{name: "absolute_untouched", provider: homeProvider, candidate: "/usr/bin/git", expectedPath: "/usr/bin/git"},
		{name: "bare_name_untouched", provider: homeProvider, candidate: "git", expectedPath: "git"},
		{name: "lookup_failure_untouched", provider: failingProvider, candidate: "~/bin/git", expectedPath: "~/bin/git"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(testCase.provider)
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.candidate))
		})
	}
}
