package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResult_MarshalJSON_CodesNeverNull(t *testing.T) {
	r := Result{Source: SourceFile, Input: "/nope", Err: errors.New("boom")}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal 失败：%v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal 失败：%v", err)
	}
	codes, ok := got["codes"].([]any)
	if !ok || len(codes) != 0 {
		t.Fatalf("期望 codes=[]，实际：%s", string(b))
	}
	if got["ok"] != false || got["error"] != "boom" {
		t.Fatalf("失败信息不符合预期：%s", string(b))
	}
}

func TestResult_FoundKeepsOrderAndDuplicates(t *testing.T) {
	r := Result{Source: SourceText, Codes: []Code{"654321", "123456", "654321"}}
	got := Strings(r.Found())
	want := []string{"654321", "123456", "654321"}
	if len(got) != len(want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("期望 %v，实际 %v", want, got)
		}
	}
}
