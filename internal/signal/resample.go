package signal

// Resample decimates samples by summing each run of block consecutive
// values. The trailing partial block is dropped. A block of 1 (or less)
// returns samples itself.
//
// Sums are accumulated in 64 bits and truncated to 32.
func Resample(samples []int32, block int) []int32 {
	if block <= 1 {
		return samples
	}

	out := make([]int32, len(samples)/block)
	for i := range out {
		var sum int64
		for _, v := range samples[i*block : (i+1)*block] {
			sum += int64(v)
		}
		out[i] = int32(sum)
	}
	return out
}

// RemoveMean subtracts the truncated integer mean from every sample in place.
func RemoveMean(samples []int32) {
	if len(samples) == 0 {
		return
	}

	var sum int64
	for _, v := range samples {
		sum += int64(v)
	}
	avg := int32(sum / int64(len(samples)))

	for i := range samples {
		samples[i] -= avg
	}
}

// BlockSize returns the decimation factor from frequency to target. The
// target must be positive, not above frequency and divide it evenly.
func BlockSize(frequency, target uint32) (int, bool) {
	if target == 0 || target > frequency || frequency%target != 0 {
		return 0, false
	}
	return int(frequency / target), true
}
