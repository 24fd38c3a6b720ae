// Copyright (c) 2026 Anindya Sen
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package stumpless

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anindyasen/stumpless/internal/stumplesstest"
)

func TestNetworkTargetTCPOctetCounting(t *testing.T) {
	recorder := stumplesstest.NewTCPRecorder()
	require.NoError(t, recorder.Start())
	defer recorder.Close()

	target, err := Network{Name: recorder.Address(), Transport: TCP4}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.AddLog(NewPrival(FacilityUser, SeverityInfo), "over tcp")
	require.NoError(t, err)

	records := recorder.WaitForRecords(1, 2*time.Second)
	require.Len(t, records, 1)
	parsed := parseRFC5424(t, string(records[0]))
	assert.Equal(t, "over tcp", parsed.message)
}

func TestNetworkTargetTCPNewlineFraming(t *testing.T) {
	recorder := stumplesstest.NewTCPRecorder()
	recorder.Framing = stumplesstest.NewlineDelimited
	require.NoError(t, recorder.Start())
	defer recorder.Close()

	target, err := Network{Name: recorder.Address(), Transport: TCP4, Framing: NewlineFraming}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.AddLog(NewPrival(FacilityUser, SeverityInfo), "newline framed")
	require.NoError(t, err)

	records := recorder.WaitForRecords(1, 2*time.Second)
	require.Len(t, records, 1)
	assert.Contains(t, string(records[0]), "newline framed")
	assert.False(t, strings.Contains(string(records[0]), "\n"))
}

func TestNetworkTargetUDP(t *testing.T) {
	recorder, err := stumplesstest.NewUDPRecorder()
	require.NoError(t, err)
	defer recorder.Close()

	target, err := Network{Name: recorder.Address(), Transport: UDP4}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.AddLog(NewPrival(FacilityUser, SeverityInfo), "datagram")
	require.NoError(t, err)

	records := recorder.WaitForRecords(1, 2*time.Second)
	require.Len(t, records, 1)
	parsed := parseRFC5424(t, string(records[0]))
	assert.Equal(t, "datagram", parsed.message)
}

func TestNetworkTargetUDPLegacyFormat(t *testing.T) {
	recorder, err := stumplesstest.NewUDPRecorder()
	require.NoError(t, err)
	defer recorder.Close()

	target, err := Network{Name: recorder.Address(), Transport: UDP4, RFC3164: true}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.SetDefaultAppName("legacyapp")
	require.NoError(t, err)
	_, err = target.AddLog(NewPrival(FacilityUser, SeverityInfo), "old school")
	require.NoError(t, err)

	records := recorder.WaitForRecords(1, 2*time.Second)
	require.Len(t, records, 1)
	line := string(records[0])
	assert.True(t, strings.HasPrefix(line, "<14>"), "line %q has wrong PRI", line)
	assert.NotContains(t, line, ">1 ", "legacy records carry no version field")
	assert.Contains(t, line, "legacyapp[")
	assert.Contains(t, line, "]: old school")
}

func TestNetworkTargetUnsupportedTransport(t *testing.T) {
	_, err := Network{Name: "localhost:514", Transport: "sctp"}.New()
	require.Error(t, err)
	assert.Equal(t, ErrorNetworkProtocolUnsupported, LastError().ID)
}

func TestNetworkTargetEmptyAddress(t *testing.T) {
	_, err := Network{}.New()
	require.Error(t, err)
	assert.Equal(t, ErrorArgumentEmpty, LastError().ID)
}

func TestNetworkTargetLazyConnection(t *testing.T) {
	// Opening with no listener succeeds because the dial is deferred to
	// the first entry.
	target, err := Network{Name: "127.0.0.1:1", Transport: TCP4}.Open()
	require.NoError(t, err)
	defer target.Close()

	_, err = target.AddLog(NewPrival(FacilityUser, SeverityInfo), "never sent")
	require.Error(t, err)
	assert.Equal(t, ErrorSocketConnectFailure, LastError().ID)
}

func TestNetworkTargetNdelayConnectsAtOpen(t *testing.T) {
	target, err := Network{Name: "127.0.0.1:1", Transport: TCP4}.New()
	require.NoError(t, err)
	_, err = target.SetOption(OptionNdelay)
	require.NoError(t, err)

	_, err = target.Open()
	require.Error(t, err)
	assert.False(t, target.IsOpen())
	assert.Equal(t, ErrorSocketConnectFailure, LastError().ID)

	recorder := stumplesstest.NewTCPRecorder()
	require.NoError(t, recorder.Start())
	defer recorder.Close()

	connected, err := Network{Name: recorder.Address(), Transport: TCP4}.New()
	require.NoError(t, err)
	_, err = connected.SetOption(OptionNdelay)
	require.NoError(t, err)
	_, err = connected.Open()
	require.NoError(t, err)
	defer connected.Close()
}

func TestNetworkTargetTCPReconnect(t *testing.T) {
	recorder := stumplesstest.NewTCPRecorder()
	recorder.DropAfter = 10
	require.NoError(t, recorder.Start())
	defer recorder.Close()

	target, err := Network{Name: recorder.Address(), Transport: TCP4}.Open()
	require.NoError(t, err)
	defer target.Close()

	delivered := 0
	for i := 0; i < 20; i++ {
		if i == 10 {
			// Give the recorder time to reset the dropped connection so
			// the sender observes the failure.
			recorder.WaitForRecords(10, 2*time.Second)
			time.Sleep(50 * time.Millisecond)
		}
		count, err := target.AddLog(NewPrival(FacilityUser, SeverityInfo), "record %d", i)
		if err == nil && count > 0 {
			delivered++
		}
	}

	records := recorder.WaitForRecords(19, 2*time.Second)
	assert.GreaterOrEqual(t, delivered, 19, "at most one record may be lost to the broken connection")
	assert.GreaterOrEqual(t, len(records), 19)
	assert.Equal(t, 1, recorder.Drops())
}

func TestNetworkTargetConcurrentEntriesDoNotInterleave(t *testing.T) {
	recorder := stumplesstest.NewTCPRecorder()
	require.NoError(t, recorder.Start())
	defer recorder.Close()

	target, err := Network{Name: recorder.Address(), Transport: TCP4}.Open()
	require.NoError(t, err)
	defer target.Close()

	const goroutines = 8
	const entriesEach = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < entriesEach; i++ {
				_, err := target.AddLog(NewPrival(FacilityUser, SeverityInfo), "writer %d entry %d", g, i)
				assert.NoError(t, err)
			}
		}(g)
	}
	wg.Wait()

	records := recorder.WaitForRecords(goroutines*entriesEach, 5*time.Second)
	require.Len(t, records, goroutines*entriesEach)

	seen := make(map[string]bool)
	for _, record := range records {
		parsed := parseRFC5424(t, string(record))
		seen[parsed.message] = true
	}
	for g := 0; g < goroutines; g++ {
		for i := 0; i < entriesEach; i++ {
			assert.True(t, seen[fmt.Sprintf("writer %d entry %d", g, i)])
		}
	}
}
