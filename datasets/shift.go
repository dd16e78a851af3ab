package datasets

// Shifted makes a next-token example: the target is the input shifted by one.
// Sequences shorter than 2 tokens give an empty example.
func Shifted(tokens []int) Example {
	if len(tokens) < 2 {
		return Example{Input: []int{}, Target: []int{}}
	}
	return Example{
		Input:  tokens[:len(tokens)-1],
		Target: tokens[1:],
	}
}

// Chunk splits a token stream into shifted examples of at most blockSize inputs.
// Consecutive chunks overlap by one token so that no target is lost.
func Chunk(tokens []int, blockSize int) (out []Example) {
	if blockSize <= 0 {
		if ex := Shifted(tokens); ex.Len() > 0 {
			out = append(out, ex)
		}
		return
	}
	for start := 0; start+1 < len(tokens); start += blockSize {
		end := start + blockSize + 1
		if end > len(tokens) {
			end = len(tokens)
		}
		out = append(out, Shifted(tokens[start:end]))
	}
	return
}
