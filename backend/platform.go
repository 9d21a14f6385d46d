package backend

import "runtime"

// CurrentPlatform は実行中のOSからメニュー構築用のプラットフォームを返します
func CurrentPlatform() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	if goos == "darwin" {
		return PlatformMac
	}
	return PlatformOther
}
