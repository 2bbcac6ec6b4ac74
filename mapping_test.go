package tcplay

import "testing"

func TestParamString_Format(t *testing.T) {
	keyBuf, err := Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer mustFree(keyBuf)
	copy(keyBuf.Bytes(), []byte("deadbeef"))

	d := &Descriptor{
		Cipher: CipherAlgo{DMCryptMode: "aes-xts-plain64"},
		Key:    keyBuf,
		Skip:   256,
		Device: "/dev/sdb1",
		Offset: 256,
	}

	want := "aes-xts-plain64 deadbeef 256 /dev/sdb1 256"
	if got := d.ParamString(); got != want {
		t.Errorf("ParamString() = %q, want %q", got, want)
	}
}
