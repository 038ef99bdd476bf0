package tutorials

// Kernel sources are OKL. OCCA translates them for the opened backend:
// an @outer loop index is the work-group id, an @inner loop index is the
// local work-item id, and GLOBAL_SIZE_d, LOCAL_SIZE_d and NUM_GROUPS_d come
// from the runner preamble. Each source takes its parameter list as %s.

// basicsKernel adds 6 to every element
const basicsKernel = `
@kernel void add(
	%s
) {
	for (int groupID = 0; groupID < NUM_GROUPS_0; ++groupID; @outer(0)) {
		for (int localID = 0; localID < LOCAL_SIZE_0; ++localID; @inner(0)) {
			const int globalID = groupID * LOCAL_SIZE_0 + localID;

			bananas[globalID] += 6;
		}
	}
}`

// adderKernel adds apples into bananas, indexed by local id. The launch is a
// single work-group, so the local id covers every element.
const adderKernel = `
@kernel void add(
	%s
) {
	for (int groupID = 0; groupID < NUM_GROUPS_0; ++groupID; @outer(0)) {
		for (int localID = 0; localID < LOCAL_SIZE_0; ++localID; @inner(0)) {
			bananas[localID] += apples[localID];
		}
	}
}`

// dimensionsKernel adds apples into bananas over a 2-D range, flattening the
// global id as GLOBAL_SIZE_0 * x + y
const dimensionsKernel = `
@kernel void add(
	%s
) {
	for (int groupY = 0; groupY < NUM_GROUPS_1; ++groupY; @outer(1)) {
		for (int groupX = 0; groupX < NUM_GROUPS_0; ++groupX; @outer(0)) {
			for (int localY = 0; localY < LOCAL_SIZE_1; ++localY; @inner(1)) {
				for (int localX = 0; localX < LOCAL_SIZE_0; ++localX; @inner(0)) {
					const int x = groupX * LOCAL_SIZE_0 + localX;
					const int y = groupY * LOCAL_SIZE_1 + localY;
					const int id = GLOBAL_SIZE_0 * x + y;

					bananas[id] += apples[id];
				}
			}
		}
	}
}`

// reduceKernel sums in[] per work-group. Every work-item adds one pair of
// inputs into local memory; after the barrier between the two @inner loops,
// work-item 0 accumulates the pairs in a private variable and writes the
// group total to global memory.
const reduceKernel = `
@kernel void add(
	%s
) {
	for (int groupID = 0; groupID < NUM_GROUPS_0; ++groupID; @outer(0)) {
		@shared int temp[LOCAL_SIZE_0];

		for (int localID = 0; localID < LOCAL_SIZE_0; ++localID; @inner(0)) {
			const int globalID = groupID * LOCAL_SIZE_0 + localID;

			temp[localID] = in[2 * globalID] + in[2 * globalID + 1];
		}

		// local memory barrier

		for (int localID = 0; localID < LOCAL_SIZE_0; ++localID; @inner(0)) {
			if (localID == 0) {
				int sum = 0;
				for (int i = 0; i < LOCAL_SIZE_0; ++i) {
					sum += temp[i];
				}
				out[groupID] = sum;
			}
		}
	}
}`

// workItemsKernel records ids: bananas[local id] = global id and
// apples[global id] = local id. Every group writes the same bananas slots,
// so only bananas[l] mod LOCAL_SIZE_0 == l is deterministic.
const workItemsKernel = `
@kernel void add(
	%s
) {
	for (int groupID = 0; groupID < NUM_GROUPS_0; ++groupID; @outer(0)) {
		for (int localID = 0; localID < LOCAL_SIZE_0; ++localID; @inner(0)) {
			const int globalID = groupID * LOCAL_SIZE_0 + localID;

			bananas[localID] = globalID;
			apples[globalID] = localID;
		}
	}
}`
