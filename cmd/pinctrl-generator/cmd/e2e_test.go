package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const e2eSVD = `<device>
  <name>EFR32MG24A010</name>
  <peripherals>
    <peripheral>
      <name>GPIO_NS</name>
      <registers>
        <register>
          <name>TIMER0_ROUTEEN</name>
          <addressOffset>0x20</addressOffset>
          <fields>
            <field><name>CC0PEN</name><bitOffset>0</bitOffset></field>
          </fields>
        </register>
        <register>
          <name>TIMER0_CC0ROUTE</name>
          <addressOffset>0x24</addressOffset>
        </register>
      </registers>
    </peripheral>
  </peripherals>
</device>`

const e2ePortIO = `<device>
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

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGenEndToEnd(t *testing.T) {
	workdir := t.TempDir()
	outdir := filepath.Join(t.TempDir(), "out")

	writeFixture(t,
		filepath.Join(workdir, "pack", "efr32mg24", "SVD", "EFR32MG24", "EFR32MG24A010.svd"),
		e2eSVD)
	writeFixture(t,
		filepath.Join(workdir, "pin_tool", "platform", "hwconf_data", "pin_tool",
			"efr32mg24", "brd4186c", "PORTIO.portio"),
		e2ePortIO)

	famFile := filepath.Join(t.TempDir(), "families.yaml")
	require.NoError(t, os.WriteFile(famFile,
		[]byte("families:\n  testfam: [efr32mg24]\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"gen", "--offline",
		"-w", workdir,
		"-o", outdir,
		"-f", "testfam",
		"--families", famFile,
	})
	require.NoError(t, rootCmd.Execute())

	header, err := os.ReadFile(filepath.Join(outdir, "testfam-pinctrl.h"))
	require.NoError(t, err)

	expected := `/*
 * Pin Control for Silicon Labs testfam devices
 * Copyright (c) 2024 Silicon Laboratories Inc.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

#include <dt-bindings/pinctrl/silabs-pinctrl-dbus.h>

#define SILABS_DBUS_TIMER0_CC0(port, pin) SILABS_DBUS(port, pin, 8, 1, 0, 1)

#define TIMER0_CC0_PA5 SILABS_DBUS_TIMER0_CC0(0, 5)
`
	assert.Equal(t, expected, string(header))
}

func TestDumpCommandPrintsWarnings(t *testing.T) {
	workdir := t.TempDir()

	writeFixture(t,
		filepath.Join(workdir, "pack", "efr32mg24", "SVD", "EFR32MG24", "EFR32MG24A010.svd"),
		e2eSVD)
	// No TIMER0 module in the routing data, so CC0 gets a no-match warning.
	writeFixture(t,
		filepath.Join(workdir, "pin_tool", "platform", "hwconf_data", "pin_tool",
			"efr32mg24", "brd4186c", "PORTIO.portio"),
		"<device><portIo><pinRoutes/></portIo></device>")

	famFile := filepath.Join(t.TempDir(), "families.yaml")
	require.NoError(t, os.WriteFile(famFile,
		[]byte("families:\n  testfam: [efr32mg24]\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"dump", "--offline",
		"-w", workdir,
		"-f", "testfam",
		"--families", famFile,
	})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(),
		"WARN [TIMER0_CC0] brd4186c: [no-routing-match] no routing-capability match for TIMER0_CC0")
	assert.Contains(t, out.String(), "Model")
}

func TestFamiliesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"families"})
	familiesFile = ""

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "xg24: efr32mg24 efr32bg24 mgm24 bgm24")
}
