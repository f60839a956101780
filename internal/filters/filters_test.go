// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []Filter
		wantErr string
	}{
		{name: "empty", spec: ""},
		{
			name: "single",
			spec: "len>5",
			want: []Filter{{Key: "len", Operand: ">", Target: "5"}},
		},
		{
			name: "negated and multiple",
			spec: "word!^Ab, len<9",
			want: []Filter{
				{Key: "word", Negate: true, Operand: "^", Target: "Ab"},
				{Key: "len", Operand: "<", Target: "9"},
			},
		},
		{name: "unknown key", spec: "size>3", wantErr: "invalid filter"},
		{name: "no operator", spec: "word", wantErr: "invalid filter"},
		{name: "len not a number", spec: "len>abc", wantErr: "needs a number"},
		{name: "len bad operand", spec: "len^3", wantErr: "len supports"},
		{name: "bad regex", spec: "word/[a-", wantErr: "invalid filter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildFilters(tt.spec)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFilters_Delimiter(t *testing.T) {
	t.Setenv("FEEDPASS_FILTER_DELIM", ";")
	got, err := BuildFilters("word@a,b;len=4")
	require.NoError(t, err)
	assert.Equal(t, []Filter{
		{Key: "word", Operand: "@", Target: "a,b"},
		{Key: "len", Operand: "=", Target: "4"},
	}, got)
}

func TestFilterWords(t *testing.T) {
	words := []string{"Anker", "Bahnhof", "Berlin", "Regierung", "Wetter"}

	tests := []struct {
		spec string
		want []string
	}{
		{spec: "", want: words},
		{spec: "len=6", want: []string{"Berlin", "Wetter"}},
		{spec: "len!=6", want: []string{"Anker", "Bahnhof", "Regierung"}},
		{spec: "len>6", want: []string{"Bahnhof", "Regierung"}},
		{spec: "len<6", want: []string{"Anker"}},
		{spec: "word^b", want: []string{"Bahnhof", "Berlin"}},
		{spec: "word!^b", want: []string{"Anker", "Regierung", "Wetter"}},
		{spec: "word$ER", want: []string{"Anker", "Wetter"}},
		{spec: "word@hn", want: []string{"Bahnhof"}},
		{spec: "word=Berlin", want: []string{"Berlin"}},
		{spec: "word~berlin", want: []string{"Berlin"}},
		{spec: "word>R", want: []string{"Regierung", "Wetter"}},
		{spec: "word<B", want: []string{"Anker"}},
		{spec: "word/^[AB].*n$", want: []string{"Berlin"}},
		{spec: "word^b,len>6", want: []string{"Bahnhof"}},
		{spec: "word^z", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := FilterWords(words, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FilterWords(words, "nope")
	assert.Error(t, err)
}
