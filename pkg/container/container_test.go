package container

import (
	"testing"

	"github.com/nmk-dotfiles/nmk/pkg/platform"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dockerCGroup = `
12:cpu,cpuacct:/docker/c6fa62a9938149f6098fd0cdaffc9cdf0f526f25d97b5f6e2a4cc1fccc7f7ce1
11:perf_event:/docker/c6fa62a9938149f6098fd0cdaffc9cdf0f526f25d97b5f6e2a4cc1fccc7f7ce1
10:rdma:/`

const initCGroup = `
12:cpu,cpuacct:/
11:perf_event:/
0::/init.scope`

const k8sCGroup = `
12:hugetlb:/kubepods/besteffort/poda00e29fd-7bbd-11e9-8679-fa163ea7e3b8/c4b1403f3d9c
11:cpuset:/kubepods/besteffort/poda00e29fd-7bbd-11e9-8679-fa163ea7e3b8/c4b1403f3d9c`

func TestParseCGroup(t *testing.T) {
	cg, ok := ParseCGroup("12:cpu,cpuacct:/")
	require.True(t, ok)
	assert.Equal(t, CGroup{HierarchyID: "12", Subsystems: "cpu,cpuacct", ControlGroup: "/"}, cg)

	cg, ok = ParseCGroup("0::/init.scope")
	require.True(t, ok)
	assert.Equal(t, "/init.scope", cg.ControlGroup)

	_, ok = ParseCGroup("garbage")
	assert.False(t, ok)
}

func TestIsContainerCGroups(t *testing.T) {
	assert.True(t, IsContainerCGroups(dockerCGroup))
	assert.True(t, IsContainerCGroups(k8sCGroup))
	assert.False(t, IsContainerCGroups(initCGroup))
	assert.False(t, IsContainerCGroups(""))
}

func TestIsContainerized(t *testing.T) {
	tests := []struct {
		name     string
		platform platform.Type
		contents string
		want     bool
	}{
		{"docker on linux", platform.Linux, dockerCGroup, true},
		{"kubernetes on alpine", platform.Alpine, k8sCGroup, true},
		{"host linux", platform.Linux, initCGroup, false},
		{"macos never", platform.MacOS, dockerCGroup, false},
		{"missing file", platform.Linux, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.contents != "" {
				require.NoError(t, afero.WriteFile(fs, InitControlGroup, []byte(tt.contents), 0444))
			}
			assert.Equal(t, tt.want, IsContainerized(fs, tt.platform))
		})
	}
}
