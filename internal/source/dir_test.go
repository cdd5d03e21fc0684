package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVD = `<device>
  <name>EFR32MG24A010</name>
  <peripherals>
    <peripheral>
      <name>GPIO_NS</name>
      <registers>
        <register>
          <name>TIMER0_ROUTEEN</name>
          <addressOffset>0x20</addressOffset>
        </register>
      </registers>
    </peripheral>
  </peripherals>
</device>`

const testPortIO = `<device>
  <portIo>
    <pinRoutes>
      <module name="TIMER0">
        <selector name="TIMER0_CC0">
          <route name="CC0"><location portBankIndex="0" pinIndex="5"/></route>
        </selector>
      </module>
    </pinRoutes>
  </portIo>
</device>`

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRegisterDocs(t *testing.T) {
	workdir := t.TempDir()
	svdDir := filepath.Join(workdir, "pack", "efr32mg24", "SVD", "EFR32MG24")
	write(t, filepath.Join(svdDir, "EFR32MG24A010.svd"), testSVD)
	write(t, filepath.Join(svdDir, "EFR32MG24B110.svd"), testSVD)

	docs, err := NewDir(workdir).RegisterDocs("efr32mg24")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "EFR32MG24A010", docs[0].Name)
	assert.Equal(t, "EFR32MG24B110", docs[1].Name)

	gpio, ok := docs[0].Device.Peripheral("GPIO_NS")
	require.True(t, ok)
	require.Len(t, gpio.Registers, 1)
}

func TestRegisterDocsMissingPack(t *testing.T) {
	_, err := NewDir(t.TempDir()).RegisterDocs("efr32mg24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "efr32mg24")
}

func TestRoutingDocs(t *testing.T) {
	workdir := t.TempDir()
	ptDir := filepath.Join(workdir, "pin_tool", "platform", "hwconf_data", "pin_tool", "efr32mg24")
	write(t, filepath.Join(ptDir, "brd4186c", "PORTIO.portio"), testPortIO)

	docs, err := NewDir(workdir).RoutingDocs("efr32mg24")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "brd4186c", docs[0].Name)

	_, ok := docs[0].Doc.FindSelector("TIMER0", "TIMER0_CC0")
	assert.True(t, ok)
}

func TestRoutingDocsMissing(t *testing.T) {
	_, err := NewDir(t.TempDir()).RoutingDocs("efr32mg24")
	require.Error(t, err)
}

func TestMalformedDocumentFails(t *testing.T) {
	workdir := t.TempDir()
	svdDir := filepath.Join(workdir, "pack", "efr32mg24", "SVD", "EFR32MG24")
	write(t, filepath.Join(svdDir, "broken.svd"), "<device><name>oops")

	_, err := NewDir(workdir).RegisterDocs("efr32mg24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.svd")
}
