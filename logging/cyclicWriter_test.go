// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-deposit-ledger/test/partitiontest"
)

func TestCyclicWrite(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	tmpDir := t.TempDir()
	liveFileName := filepath.Join(tmpDir, "live.test")
	archiveFileName := filepath.Join(tmpDir, "archive.test")

	space := 1024
	cyclicWriter, err := OpenCyclicFileWriter(liveFileName, archiveFileName, uint64(space))
	require.NoError(t, err)
	defer cyclicWriter.Close()

	firstWrite := make([]byte, space)
	for i := range firstWrite {
		firstWrite[i] = 'A'
	}
	n, err := cyclicWriter.Write(firstWrite)
	require.NoError(t, err)
	require.Equal(t, len(firstWrite), n)

	secondWrite := []byte{'B'}
	n, err = cyclicWriter.Write(secondWrite)
	require.NoError(t, err)
	require.Equal(t, len(secondWrite), n)

	liveData, err := os.ReadFile(liveFileName)
	require.NoError(t, err)
	require.Equal(t, secondWrite, liveData)

	oldData, err := os.ReadFile(archiveFileName)
	require.NoError(t, err)
	require.Equal(t, firstWrite, oldData)

	_, err = cyclicWriter.Write(make([]byte, space+1))
	require.Error(t, err)
}

func TestCyclicWriteResumes(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	tmpDir := t.TempDir()
	liveFileName := filepath.Join(tmpDir, "live.test")
	archiveFileName := filepath.Join(tmpDir, "archive.test")
	require.NoError(t, os.WriteFile(liveFileName, []byte("0123456789"), 0600))

	cyclicWriter, err := OpenCyclicFileWriter(liveFileName, archiveFileName, 12)
	require.NoError(t, err)

	// the existing content counts against the limit
	_, err = cyclicWriter.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, cyclicWriter.Close())

	oldData, err := os.ReadFile(archiveFileName)
	require.NoError(t, err)
	require.Equal(t, "0123456789", string(oldData))

	_, err = cyclicWriter.Write([]byte("x"))
	require.ErrorIs(t, err, os.ErrClosed)

	_, err = OpenCyclicFileWriter(filepath.Join(tmpDir, "missing", "live.test"), archiveFileName, 12)
	require.Error(t, err)
}

func TestLoggerToCyclicFile(t *testing.T) {
	partitiontest.PartitionTest(t)

	tmpDir := t.TempDir()
	liveFileName := filepath.Join(tmpDir, "live.test")
	cyclicWriter, err := OpenCyclicFileWriter(liveFileName, filepath.Join(tmpDir, "archive.test"), 4096)
	require.NoError(t, err)
	defer cyclicWriter.Close()

	l := NewLogger()
	l.SetOutput(cyclicWriter)
	l.SetLevel(Info)
	l.Infof("custodial balance checked")

	liveData, err := os.ReadFile(liveFileName)
	require.NoError(t, err)
	require.Contains(t, string(liveData), "custodial balance checked")
}
