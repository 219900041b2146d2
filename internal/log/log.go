//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Package log is the progress logger for the bound engine: bisection
// steps and exhaustive-search completions go through here, never the
// hot engine loop itself.
package log

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Logging levels, most to least severe.
const (
	CRITICAL = iota
	SEVERE
	ERROR
	WARN
	INFO
	DBG
)

const rotate = iota // internal command: rotate log file

type msg struct {
	ts    time.Time
	level int
	text  string
}

type logger struct {
	msgChan chan msg
	cmdChan chan int
	logfile *os.File
	started time.Time
	level   int
}

var inst *logger

func init() {
	inst = &logger{
		msgChan: make(chan msg),
		cmdChan: make(chan int),
		logfile: os.Stdout,
		started: time.Now(),
		level:   INFO,
	}
	go func() {
		for {
			select {
			case m := <-inst.msgChan:
				inst.logfile.WriteString(SimpleFormat(m))
			case cmd := <-inst.cmdChan:
				if cmd == rotate {
					inst.doRotate()
				}
			}
		}
	}()
}

func (l *logger) doRotate() {
	if l.logfile == os.Stdout {
		Println(WARN, "[log] log rotation for 'stdout' not applicable")
		return
	}
	fname := l.logfile.Name()
	l.logfile.Close()
	ts := l.started.Format(time.RFC3339)
	os.Rename(fname, fname+"."+ts)
	f, err := os.Create(fname)
	if err != nil {
		l.logfile = os.Stdout
		return
	}
	l.logfile = f
	l.started = time.Now()
}

// Println logs a line at the given level.
func Println(level int, line string) {
	if level <= inst.level {
		inst.msgChan <- msg{time.Now(), level, line}
	}
}

// Printf logs a formatted line at the given level.
func Printf(level int, format string, v ...interface{}) {
	if level <= inst.level {
		inst.msgChan <- msg{time.Now(), level, fmt.Sprintf(format, v...)}
	}
}

// LogToFile redirects logging to a file; returns false on failure.
func LogToFile(filename string) bool {
	f, err := os.Create(filename)
	if err != nil {
		Println(ERROR, "[log] can't enable file-based logging")
		return false
	}
	inst.logfile = f
	inst.started = time.Now()
	Println(INFO, "[log] file-based logging to '"+filename+"'")
	return true
}

// Rotate rotates the current log file.
func Rotate() {
	inst.cmdChan <- rotate
}

// SetLevel sets the numeric logging threshold.
func SetLevel(lvl int) {
	if lvl < CRITICAL || lvl > DBG {
		Printf(WARN, "[log] unknown loglevel '%d' requested -- ignored", lvl)
		return
	}
	inst.level = lvl
}

// Level returns the current logging threshold.
func Level() int {
	return inst.level
}

// SimpleFormat renders a log message as a single text line.
func SimpleFormat(m msg) string {
	ts := m.ts.Format(time.Stamp)
	txt := strings.Trim(m.text, "\n")
	return fmt.Sprintf("%s [%s] %s\n", ts, tag(m.level), txt)
}

func tag(level int) string {
	switch level {
	case CRITICAL:
		return "CRIT"
	case SEVERE:
		return "SEVR"
	case ERROR:
		return "ERRO"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DBG:
		return "DBG "
	}
	return "????"
}
