package pixiv

import "os"

func fixture(path string) []byte {
	buf, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	return buf
}
